package structured

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EncodePayload turns a user payload into message text.
//
// Strings are used verbatim. json.RawMessage and []byte are treated as
// already-serialized JSON and compacted. Any other value is serialized to
// canonical JSON: map keys sorted, no HTML escaping, no trailing newline.
func EncodePayload(payload any) (string, error) {
	switch p := payload.(type) {
	case string:
		return p, nil
	case json.RawMessage:
		return compactJSON(p)
	case []byte:
		return compactJSON(p)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return "", NewUserInputError(fmt.Sprintf("cannot encode user payload of type %T", payload), 0, err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func compactJSON(data []byte) (string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return "", NewUserInputError("user payload is not valid JSON", 0, err)
	}
	return buf.String(), nil
}
