package payload

import (
	"bytes"
	"encoding/json"
)

// marshalValue renders a value tree as compact JSON. HTML escaping is off
// so the bytes survive exactly as constructed, and ordered objects in the
// tree marshal in insertion order.
func marshalValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encode appends a newline the payload must not carry.
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}
