package payload

// Nested builds a document wrapped exactly p.Depth levels deep around a
// scalar leaf. One key (or element) per level keeps the text tiny while
// pushing recursive parsers toward their depth limits. Depth 0 is the bare
// leaf, which is itself a valid top-level JSON document.
func Nested(p NestedParams) (Payload, error) {
	if err := checkParams(p); err != nil {
		return nil, err
	}
	var doc any = 0
	for i := 0; i < p.Depth; i++ {
		if p.Arrays {
			doc = []any{doc}
		} else {
			doc = map[string]any{"n": doc}
		}
	}
	return Structured{kind: KindNested, value: doc}, nil
}
