package payload

// HugeArray builds {"arr":[0,0,...]} with exactly p.Length elements, for
// probing array-allocation limits.
func HugeArray(p HugeArrayParams) (Payload, error) {
	if err := checkParams(p); err != nil {
		return nil, err
	}
	obj := newObject()
	obj.Set("arr", make([]int, p.Length))
	return Structured{kind: KindHugeArray, value: obj}, nil
}
