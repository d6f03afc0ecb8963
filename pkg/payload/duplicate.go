package payload

import (
	"fmt"
	"strings"
)

// Duplicate builds raw text in which the same key appears p.Repeat times
// with distinct values. A conformant encoder cannot emit colliding keys, so
// each pair is encoded on its own (keeping arbitrary key text escaped
// correctly) and the pairs are stitched together by hand.
func Duplicate(p DuplicateParams) (Payload, error) {
	if err := checkParams(p); err != nil {
		return nil, err
	}
	pairs := make([]string, p.Repeat)
	for i := range pairs {
		one, err := marshalValue(map[string]string{p.Key: fmt.Sprintf("%s_%d", p.Key, i)})
		if err != nil {
			return nil, err
		}
		pairs[i] = string(one[1 : len(one)-1])
	}
	text := "{" + strings.Join(pairs, ",") + "}"
	return RawText{kind: KindDuplicate, text: []byte(text)}, nil
}
