package payload

import "strings"

// LongKey builds an object whose single key is exactly p.Length characters
// long. Length 0 is legal: {"":"v"} is valid JSON.
func LongKey(p LongKeyParams) (Payload, error) {
	if err := checkParams(p); err != nil {
		return nil, err
	}
	obj := newObject()
	obj.Set(strings.Repeat("k", p.Length), "v")
	return Structured{kind: KindLongKey, value: obj}, nil
}
