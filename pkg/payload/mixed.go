package payload

import (
	"fmt"
	"strings"
)

// Mixed builds the combined payload: a manykeys body, a "__dict__" probe,
// and one oversized string value, all in a single object. Consumers that
// survive each pattern alone sometimes fail their combination.
func Mixed(p MixedParams) (Payload, error) {
	if err := checkParams(p); err != nil {
		return nil, err
	}
	obj := newObject()
	for i := 0; i < p.Count; i++ {
		obj.Set(fmt.Sprintf("k%08d", i), i)
	}
	obj.Set("__dict__", map[string]any{"injected": "pwn", "num": 123})
	obj.Set("k_long", strings.Repeat("k", p.Long))
	return Structured{kind: KindMixed, value: obj}, nil
}
