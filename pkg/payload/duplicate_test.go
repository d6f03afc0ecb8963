package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestDuplicateKeyAppearsRepeatTimes(t *testing.T) {
	p, err := Duplicate(DuplicateParams{Key: "dup", Repeat: 5})
	data := renderPayload(t, p, err)

	if n := bytes.Count(data, []byte(`"dup":`)); n != 5 {
		t.Errorf(`key "dup" appears %d times, want 5`, n)
	}
	for _, value := range []string{`"dup_0"`, `"dup_4"`} {
		if !bytes.Contains(data, []byte(value)) {
			t.Errorf("distinct value %s missing: %s", value, data)
		}
	}
}

func TestDuplicateIsGrammarValid(t *testing.T) {
	// Duplicate keys are legal JSON grammar; the hostility lies in how
	// consumers resolve the collision, which is deliberately not asserted
	// here.
	p, err := Duplicate(DuplicateParams{Key: "dup", Repeat: 3})
	data := renderPayload(t, p, err)
	if !json.Valid(data) {
		t.Errorf("duplicate payload is not grammar-valid: %s", data)
	}
}

func TestDuplicateEscapesHostileKey(t *testing.T) {
	p, err := Duplicate(DuplicateParams{Key: `he said "hi"`, Repeat: 2})
	data := renderPayload(t, p, err)
	if !json.Valid(data) {
		t.Fatalf("payload with quoted key is not grammar-valid: %s", data)
	}
	var obj map[string]string
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatalf("payload does not decode: %v", err)
	}
	if _, ok := obj[`he said "hi"`]; !ok {
		t.Error("escaped key did not round-trip")
	}
}

func TestDuplicateRejectsSingleOccurrence(t *testing.T) {
	_, err := Duplicate(DuplicateParams{Key: "dup", Repeat: 1})
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("Expected ErrInvalidParameter, got %v", err)
	}
}

func TestDuplicateRejectsEmptyKey(t *testing.T) {
	_, err := Duplicate(DuplicateParams{Key: "", Repeat: 3})
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("Expected ErrInvalidParameter, got %v", err)
	}
}
