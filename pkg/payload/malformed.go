package payload

import (
	"fmt"
	"sort"
	"strings"
)

// Mode names one syntax violation.
type Mode string

const (
	ModeUnclosedBracket    Mode = "unclosed-bracket"
	ModeTrailingComma      Mode = "trailing-comma"
	ModeUnescapedControl   Mode = "unescaped-control"
	ModeMismatchedBrackets Mode = "mismatched-brackets"
	ModeTruncatedValue     Mode = "truncated-value"
	ModeBadToken           Mode = "bad-token"
	ModeBrokenUTF8         Mode = "broken-utf8"
)

// DefaultMode is the probe most parsers trip on first.
const DefaultMode = ModeUnclosedBracket

// malformations maps each mode to its generator. Every mode starts from
// valid text and applies one targeted mutation, so a parser failure can be
// attributed to a single violated rule.
var malformations = map[Mode]func() []byte{
	ModeUnclosedBracket: func() []byte {
		// Strip the final closing brace, leaving one more opener than
		// closers.
		s := `{"a": 1, "b": [1,2,3]}`
		return []byte(s[:len(s)-1])
	},
	ModeTrailingComma: func() []byte {
		return []byte(`{"a":1,}`)
	},
	ModeUnescapedControl: func() []byte {
		// A raw 0x01 byte inside the string, which JSON requires escaped.
		return []byte("{\"a\": \"x\x01y\"}")
	},
	ModeMismatchedBrackets: func() []byte {
		// Delimiter counts balance, but the types are crossed.
		return []byte(`["mismatched", "close"}`)
	},
	ModeTruncatedValue: func() []byte {
		return []byte(`{"malformed":`)
	},
	ModeBadToken: func() []byte {
		return []byte(`{"a": NaN }`)
	},
	ModeBrokenUTF8: func() []byte {
		// 0xFF is not valid anywhere in UTF-8.
		return []byte{'{', '"', 'a', '"', ':', ' ', '"', 0xff, 0xff, '"', '}'}
	},
}

// Modes lists the valid malformation modes, sorted.
func Modes() []string {
	names := make([]string, 0, len(malformations))
	for m := range malformations {
		names = append(names, string(m))
	}
	sort.Strings(names)
	return names
}

// Malformed builds deterministically broken text for the selected mode.
func Malformed(p MalformedParams) (Payload, error) {
	if err := checkParams(p); err != nil {
		return nil, err
	}
	generate, ok := malformations[Mode(p.Mode)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid modes: %s)",
			ErrUnknownMode, p.Mode, strings.Join(Modes(), ", "))
	}
	return RawText{kind: KindMalformed, text: generate()}, nil
}
