package google

import (
	"errors"
	"fmt"

	"github.com/spetersoncode/structured/internal/provider/status"
	"google.golang.org/genai"
)

// wrapError categorizes a GenAI error by its status code.
// genai.APIError doesn't expose headers, so Retry-After is not available.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	return status.Wrap(err, apiErr.Code, nil)
}

// BlockedError indicates the prompt was blocked by content filtering.
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("request blocked: %s", e.Reason)
}
