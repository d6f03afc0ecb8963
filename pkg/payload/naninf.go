package payload

// NaNInf builds a fixed object whose values are the NaN, Infinity, and
// -Infinity tokens, unquoted and in value position. Strict parsers must
// reject all three; the payload flushes out lenient ones that quietly
// accept them.
func NaNInf() Payload {
	return RawText{kind: KindNaNInf, text: []byte(`{"x": NaN, "y": Infinity, "z": -Infinity}`)}
}
