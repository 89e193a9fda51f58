package anthropic

import (
	"errors"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/spetersoncode/structured/internal/provider/status"
)

// wrapError categorizes an Anthropic SDK error by its HTTP status and
// Retry-After header.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	var header http.Header
	if apiErr.Response != nil {
		header = apiErr.Response.Header
	}
	return status.Wrap(err, apiErr.StatusCode, header)
}
