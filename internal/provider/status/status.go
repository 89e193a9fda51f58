// Package status maps provider HTTP failures onto categorized errors.
package status

import (
	"net/http"
	"strconv"
	"time"

	"github.com/spetersoncode/structured"
)

// Wrap categorizes an SDK error that carried an HTTP status code. header may
// be nil when the SDK does not expose response headers.
func Wrap(err error, code int, header http.Header) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	if retryAfter := ParseRetryAfter(header); retryAfter > 0 {
		return structured.NewTransientErrorWithRetry(msg, code, retryAfter, err)
	}

	switch Categorize(code) {
	case structured.ErrorTransient:
		return structured.NewTransientError(msg, code, err)
	case structured.ErrorUserInput:
		return structured.NewUserInputError(msg, code, err)
	default:
		return structured.NewPermanentError(msg, code, err)
	}
}

// Categorize determines the error category from an HTTP status code.
func Categorize(code int) structured.ErrorCategory {
	switch {
	case code == 429:
		return structured.ErrorTransient // Rate limited
	case code >= 500 && code < 600:
		return structured.ErrorTransient // Server error
	case code == 401 || code == 403:
		return structured.ErrorPermanent // Authentication/authorization
	case code == 400 || code == 404 || code == 422:
		return structured.ErrorUserInput // Bad request or not found
	default:
		return structured.ErrorPermanent
	}
}

// ParseRetryAfter extracts the Retry-After duration from response headers.
// Returns 0 if the header is not present or cannot be parsed.
func ParseRetryAfter(header http.Header) time.Duration {
	if header == nil {
		return 0
	}

	value := header.Get("Retry-After")
	if value == "" {
		return 0
	}

	// Try parsing as seconds (most common)
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	// Try parsing as HTTP-date (RFC 7231)
	if t, err := http.ParseTime(value); err == nil {
		if delay := time.Until(t); delay > 0 {
			return delay
		}
	}

	return 0
}
