package structured

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoChoices is returned (wrapped in a MalformedResponseError) when the
// provider response carries no choices to read content from.
var ErrNoChoices = errors.New("response contains no choices")

// ErrorCategory tells a caller what to do about a failed completion request.
// Provider adapters assign it from the HTTP status of the failed call; payload
// encoding assigns ErrorUserInput before anything is sent.
type ErrorCategory string

const (
	// ErrorTransient: the same request may succeed later (429, 5xx). The
	// client never repeats it on its own.
	ErrorTransient ErrorCategory = "transient"

	// ErrorPermanent: the request cannot succeed with this client setup
	// (401, 403, unknown status).
	ErrorPermanent ErrorCategory = "permanent"

	// ErrorUserInput: the request itself must change (400, 404, 422, a
	// payload that cannot be encoded, a blocked prompt).
	ErrorUserInput ErrorCategory = "user_input"
)

// CategorizedError is implemented by errors that carry an ErrorCategory.
// The helpers below find it anywhere in a wrap chain, including inside a
// *ProviderError.
type CategorizedError interface {
	error
	Category() ErrorCategory
	Retryable() bool
	StatusCode() int
	RetryAfter() time.Duration
}

// Error is the categorized error produced by the provider adapters and by
// payload encoding.
type Error struct {
	Msg        string
	Cat        ErrorCategory
	Code       int           // HTTP status of the provider call, 0 when there was none
	RetryDelay time.Duration // parsed Retry-After, 0 when absent
	Cause      error         // SDK or encoder error
}

func newError(cat ErrorCategory, msg string, statusCode int, retryAfter time.Duration, cause error) *Error {
	return &Error{Msg: msg, Cat: cat, Code: statusCode, RetryDelay: retryAfter, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// Category returns the error category.
func (e *Error) Category() ErrorCategory { return e.Cat }

// Retryable reports whether a caller may send the same request again.
func (e *Error) Retryable() bool { return e.Cat == ErrorTransient }

// StatusCode returns the provider's HTTP status, or 0.
func (e *Error) StatusCode() int { return e.Code }

// RetryAfter returns the delay the provider asked for, or 0.
func (e *Error) RetryAfter() time.Duration { return e.RetryDelay }

// NewTransientError reports a provider failure worth retrying later.
func NewTransientError(msg string, statusCode int, cause error) *Error {
	return newError(ErrorTransient, msg, statusCode, 0, cause)
}

// NewTransientErrorWithRetry is NewTransientError with the provider's
// Retry-After delay.
func NewTransientErrorWithRetry(msg string, statusCode int, retryAfter time.Duration, cause error) *Error {
	return newError(ErrorTransient, msg, statusCode, retryAfter, cause)
}

// NewPermanentError reports a provider failure that retrying cannot fix.
func NewPermanentError(msg string, statusCode int, cause error) *Error {
	return newError(ErrorPermanent, msg, statusCode, 0, cause)
}

// NewUserInputError reports a request that must be changed before sending.
// statusCode is 0 when the failure happened before dispatch.
func NewUserInputError(msg string, statusCode int, cause error) *Error {
	return newError(ErrorUserInput, msg, statusCode, 0, cause)
}

func categorized(err error) (CategorizedError, bool) {
	var ce CategorizedError
	ok := errors.As(err, &ce)
	return ce, ok
}

// IsTransient reports whether err carries ErrorTransient.
func IsTransient(err error) bool {
	ce, ok := categorized(err)
	return ok && ce.Category() == ErrorTransient
}

// IsPermanent reports whether err carries ErrorPermanent.
func IsPermanent(err error) bool {
	ce, ok := categorized(err)
	return ok && ce.Category() == ErrorPermanent
}

// IsUserInput reports whether err carries ErrorUserInput.
func IsUserInput(err error) bool {
	ce, ok := categorized(err)
	return ok && ce.Category() == ErrorUserInput
}

// StatusCodeOf returns the provider HTTP status found in err, or 0.
func StatusCodeOf(err error) int {
	if ce, ok := categorized(err); ok {
		return ce.StatusCode()
	}
	return 0
}

// RetryAfterOf returns the provider's Retry-After delay found in err, or 0.
func RetryAfterOf(err error) time.Duration {
	if ce, ok := categorized(err); ok {
		return ce.RetryAfter()
	}
	return 0
}

// ProviderError reports a failure of the completion provider call itself:
// network, authentication, rate limiting or model errors. The provider's error
// is kept unchanged as the cause, so categorization helpers such as IsTransient
// still see a wrapped *Error when the SDK exposed an HTTP status.
type ProviderError struct {
	Provider ProviderName
	Model    string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider request failed (model %q): %v", e.Provider, e.Model, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// MalformedResponseError reports provider content that could not be parsed
// as JSON (or decoded into the requested type).
type MalformedResponseError struct {
	Content string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response content: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// IsProviderError reports whether err is or wraps a *ProviderError.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}

// IsMalformedResponse reports whether err is or wraps a *MalformedResponseError.
func IsMalformedResponse(err error) bool {
	var me *MalformedResponseError
	return errors.As(err, &me)
}
