package openai

import (
	"errors"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/spetersoncode/structured/internal/provider/status"
)

// wrapError categorizes an OpenAI SDK error by its HTTP status and Retry-After
// header. Errors without a status (network failures, cancellation) are
// returned as is.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	var header http.Header
	if apiErr.Response != nil {
		header = apiErr.Response.Header
	}
	return status.Wrap(err, apiErr.StatusCode, header)
}
