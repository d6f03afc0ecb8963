// Package payload builds intentionally hostile JSON documents for testing
// parser robustness: pathological but syntactically valid structures (deep
// nesting, huge key counts, oversized keys) and deliberately broken text
// that no conformant encoder would ever emit (duplicate keys, bare NaN
// tokens, malformed syntax).
package payload

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind identifies one payload family.
type Kind string

const (
	KindNested    Kind = "nested"
	KindManyKeys  Kind = "manykeys"
	KindLongKey   Kind = "longkey"
	KindHugeArray Kind = "hugearray"
	KindDunder    Kind = "dunder"
	KindMalformed Kind = "malformed"
	KindNaNInf    Kind = "naninf"
	KindDuplicate Kind = "duplicate"
	KindMixed     Kind = "mixed"
)

// Catalog lists the kinds the batch generator emits by default, in the
// order their artifacts are produced.
func Catalog() []Kind {
	return []Kind{
		KindNested,
		KindManyKeys,
		KindLongKey,
		KindDunder,
		KindMalformed,
		KindNaNInf,
		KindDuplicate,
	}
}

// Kinds lists every kind the generator knows, including the ones only
// reachable through their own subcommand or a suite file.
func Kinds() []Kind {
	return []Kind{
		KindNested,
		KindManyKeys,
		KindLongKey,
		KindHugeArray,
		KindDunder,
		KindMalformed,
		KindNaNInf,
		KindDuplicate,
		KindMixed,
	}
}

// Object is a JSON object that marshals its keys in insertion order. The
// built-in map type would sort them, which breaks the key-order guarantees
// several payloads carry.
type Object = orderedmap.OrderedMap[string, any]

func newObject() *Object { return orderedmap.New[string, any]() }

// Payload is a generated document ready to be rendered to bytes.
type Payload interface {
	Kind() Kind
	Render() ([]byte, error)
}

// Structured holds an in-memory value tree destined for the standard
// encoder. Rendering it always yields syntactically valid JSON.
type Structured struct {
	kind  Kind
	value any
}

func (p Structured) Kind() Kind { return p.kind }

// Value exposes the tree for previews and tests.
func (p Structured) Value() any { return p.value }

// Render serializes the tree compactly, without HTML escaping.
func (p Structured) Render() ([]byte, error) {
	return marshalValue(p.value)
}

// RawText holds bytes assembled by hand because a conformant encoder cannot
// produce them. Rendering emits them verbatim.
type RawText struct {
	kind Kind
	text []byte
}

func (p RawText) Kind() Kind { return p.kind }

func (p RawText) Render() ([]byte, error) { return p.text, nil }

// builders is the static dispatch table. Kinds absent from it do not exist.
var builders = map[Kind]func(Request) (Payload, error){
	KindNested:    func(r Request) (Payload, error) { return Nested(r.Nested) },
	KindManyKeys:  func(r Request) (Payload, error) { return ManyKeys(r.ManyKeys) },
	KindLongKey:   func(r Request) (Payload, error) { return LongKey(r.LongKey) },
	KindHugeArray: func(r Request) (Payload, error) { return HugeArray(r.HugeArray) },
	KindDunder:    func(r Request) (Payload, error) { return Dunder(r.Dunder) },
	KindMalformed: func(r Request) (Payload, error) { return Malformed(r.Malformed) },
	KindNaNInf:    func(r Request) (Payload, error) { return NaNInf(), nil },
	KindDuplicate: func(r Request) (Payload, error) { return Duplicate(r.Duplicate) },
	KindMixed:     func(r Request) (Payload, error) { return Mixed(r.Mixed) },
}

// Build validates the request and dispatches to the kind's builder.
func Build(r Request) (Payload, error) {
	build, ok := builders[r.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown payload kind %q", ErrInvalidParameter, r.Kind)
	}
	return build(r)
}
