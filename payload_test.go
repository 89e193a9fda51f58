package structured

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePayload(t *testing.T) {
	type contact struct {
		FirstName string `json:"first_name"`
		Email     string `json:"email,omitempty"`
	}

	tests := []struct {
		name    string
		payload any
		want    string
	}{
		{"string verbatim", "free text", "free text"},
		{"empty string", "", ""},
		{"json string not re-encoded", `{"a":1}`, `{"a":1}`},
		{"map sorted keys", map[string]any{"b": 2, "a": 1}, `{"a":1,"b":2}`},
		{"struct", contact{FirstName: "John"}, `{"first_name":"John"}`},
		{"no html escaping", map[string]string{"q": "<a&b>"}, `{"q":"<a&b>"}`},
		{"slice", []int{1, 2}, `[1,2]`},
		{"number", 42, `42`},
		{"nil", nil, `null`},
		{"raw message compacted", json.RawMessage("{\n  \"a\": 1\n}"), `{"a":1}`},
		{"bytes compacted", []byte(`[ 1, 2 ]`), `[1,2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodePayload(tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodePayloadErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload any
	}{
		{"unsupported type", make(chan int)},
		{"invalid raw json", json.RawMessage(`{"a":`)},
		{"invalid bytes", []byte("not json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodePayload(tt.payload)
			require.Error(t, err)
			assert.True(t, IsUserInput(err))
		})
	}
}
