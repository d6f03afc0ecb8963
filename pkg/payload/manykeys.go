package payload

import "fmt"

// ManyKeys builds one flat object with exactly p.Count keys. Each key is
// the prefix plus a zero-padded index, so keys are distinct by construction
// and the emitted order is the index order.
func ManyKeys(p ManyKeysParams) (Payload, error) {
	if err := checkParams(p); err != nil {
		return nil, err
	}
	obj := newObject()
	for i := 0; i < p.Count; i++ {
		obj.Set(fmt.Sprintf("%s%08d", p.Prefix, i), i)
	}
	return Structured{kind: KindManyKeys, value: obj}, nil
}
