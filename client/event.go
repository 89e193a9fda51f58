package client

import (
	"time"

	"github.com/spetersoncode/structured"
)

// EventType identifies the kind of event occurring during client operations.
type EventType string

const (
	// EventRequestStart fires before a completion request is dispatched.
	EventRequestStart EventType = "request_start"

	// EventRequestComplete fires after a response was received and parsed.
	EventRequestComplete EventType = "request_complete"

	// EventRequestError fires when the provider call or parsing fails.
	EventRequestError EventType = "request_error"
)

// Event represents an observable occurrence during client operations.
type Event struct {
	// Type identifies the kind of event.
	Type EventType

	// Operation identifies the client operation ("complete_with_schema").
	Operation string

	// RequestID correlates the events of one call.
	RequestID string

	// Provider identifies which provider is being used.
	Provider structured.ProviderName

	// Model is the model the request was sent to.
	Model string

	// Schema is the name of the response schema.
	Schema string

	// Duration is the elapsed time for finished requests.
	Duration time.Duration

	// Usage contains token usage for completed requests.
	Usage *structured.Usage

	// Error contains the error for EventRequestError.
	Error error

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// emit sends an event with timestamp to the channel without blocking.
func emit(ch chan<- Event, event Event) {
	if ch == nil {
		return
	}
	event.Timestamp = time.Now()
	select {
	case ch <- event:
	default:
		// Channel full - don't block
	}
}
