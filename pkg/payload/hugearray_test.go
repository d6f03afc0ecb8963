package payload

import (
	"encoding/json"
	"testing"
)

func TestHugeArrayLength(t *testing.T) {
	p, err := HugeArray(HugeArrayParams{Length: 2500})
	data := renderPayload(t, p, err)

	var obj map[string][]int
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatalf("payload does not decode: %v", err)
	}
	arr, ok := obj["arr"]
	if !ok {
		t.Fatal(`payload missing the "arr" key`)
	}
	if len(arr) != 2500 {
		t.Errorf("array has %d elements, want 2500", len(arr))
	}
	for i, v := range arr {
		if v != 0 {
			t.Fatalf("element %d = %d, want 0", i, v)
		}
	}
}

func TestHugeArrayZeroLength(t *testing.T) {
	p, err := HugeArray(HugeArrayParams{Length: 0})
	data := renderPayload(t, p, err)

	if string(data) != `{"arr":[]}` {
		t.Errorf("zero-length payload = %q", data)
	}
}
