package payload

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDunderAllEmitsExactlyTheCatalog(t *testing.T) {
	p, err := Dunder(DunderParams{Target: TargetAll})
	data := renderPayload(t, p, err)

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatalf("payload does not decode: %v", err)
	}

	got := make([]string, 0, len(obj))
	for key := range obj {
		got = append(got, key)
	}
	sort.Strings(got)

	// Every selectable target except the "all" pseudo-target.
	want := []string{}
	for _, name := range DunderTargets() {
		if name != TargetAll {
			want = append(want, name)
		}
	}
	sort.Strings(want)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("key set mismatch (-want +got):\n%s", diff)
	}
}

func TestDunderSingleTarget(t *testing.T) {
	p, err := Dunder(DunderParams{Target: "__proto__"})
	data := renderPayload(t, p, err)

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatalf("payload does not decode: %v", err)
	}
	if len(obj) != 1 {
		t.Fatalf("decoded %d keys, want exactly the selected one", len(obj))
	}
	if _, ok := obj["__proto__"]; !ok {
		t.Error("selected key missing from payload")
	}
}

func TestDunderUnknownTarget(t *testing.T) {
	_, err := Dunder(DunderParams{Target: "__bogus__"})
	if !errors.Is(err, ErrInvalidSelector) {
		t.Fatalf("Expected ErrInvalidSelector, got %v", err)
	}
	// The message should tell the caller what would have worked.
	if !strings.Contains(err.Error(), "__proto__") {
		t.Errorf("error does not list valid targets: %v", err)
	}
}

func TestDunderKeysStayLiteral(t *testing.T) {
	p, err := Dunder(DunderParams{Target: TargetAll})
	data := renderPayload(t, p, err)

	if !strings.Contains(string(data), `"__proto__":`) {
		t.Errorf("__proto__ key not emitted literally: %s", data)
	}
}
