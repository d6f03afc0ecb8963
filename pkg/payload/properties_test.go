package payload

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestBuilderProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("nested depth round-trips for any non-negative depth", prop.ForAll(
		func(depth int) bool {
			p, err := Nested(NestedParams{Depth: depth})
			if err != nil {
				return false
			}
			data, err := p.Render()
			if err != nil {
				return false
			}
			return json.Valid(data) && decodedDepth(data) == depth
		},
		gen.IntRange(0, 300),
	))

	properties.Property("manykeys emits exactly the requested key count", prop.ForAll(
		func(count int) bool {
			p, err := ManyKeys(ManyKeysParams{Count: count, Prefix: "k"})
			if err != nil {
				return false
			}
			data, err := p.Render()
			if err != nil {
				return false
			}
			var obj map[string]any
			if err := json.Unmarshal(data, &obj); err != nil {
				return false
			}
			return len(obj) == count
		},
		gen.IntRange(0, 500),
	))

	properties.Property("longkey emits a key of exactly the requested length", prop.ForAll(
		func(length int) bool {
			p, err := LongKey(LongKeyParams{Length: length})
			if err != nil {
				return false
			}
			data, err := p.Render()
			if err != nil {
				return false
			}
			var obj map[string]string
			if err := json.Unmarshal(data, &obj); err != nil {
				return false
			}
			for key := range obj {
				if len(key) != length {
					return false
				}
			}
			return len(obj) == 1
		},
		gen.IntRange(0, 3000),
	))

	properties.Property("duplicate key appears exactly repeat times", prop.ForAll(
		func(repeat int) bool {
			p, err := Duplicate(DuplicateParams{Key: "dup", Repeat: repeat})
			if err != nil {
				return false
			}
			data, err := p.Render()
			if err != nil {
				return false
			}
			return bytes.Count(data, []byte(`"dup":`)) == repeat
		},
		gen.IntRange(2, 12),
	))

	properties.Property("hugearray emits exactly the requested element count", prop.ForAll(
		func(length int) bool {
			p, err := HugeArray(HugeArrayParams{Length: length})
			if err != nil {
				return false
			}
			data, err := p.Render()
			if err != nil {
				return false
			}
			var obj map[string][]int
			if err := json.Unmarshal(data, &obj); err != nil {
				return false
			}
			return len(obj["arr"]) == length
		},
		gen.IntRange(0, 2000),
	))

	properties.TestingRun(t)
}

func TestManyKeysKeysAreDistinct(t *testing.T) {
	// Distinctness follows from the index-derived construction; verify it
	// holds through encoding anyway for a non-trivial count.
	const count = 3000
	p, err := ManyKeys(ManyKeysParams{Count: count, Prefix: "k"})
	data := renderPayload(t, p, err)

	seen := make(map[string]bool, count)
	dec := json.NewDecoder(bytes.NewReader(data))
	// Token-level walk sees every key, where Unmarshal would collapse
	// duplicates silently.
	if _, err := dec.Token(); err != nil {
		t.Fatalf("reading opening brace: %v", err)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			t.Fatalf("reading key: %v", err)
		}
		key := tok.(string)
		if seen[key] {
			t.Fatalf("key %q emitted twice", key)
		}
		seen[key] = true
		var value int
		if err := dec.Decode(&value); err != nil {
			t.Fatalf("reading value: %v", err)
		}
	}
	if len(seen) != count {
		t.Fatalf("saw %d distinct keys, want %d", len(seen), count)
	}
}
