package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestMalformedModesAreRejectedByStrictParser(t *testing.T) {
	for _, mode := range Modes() {
		if mode == string(ModeBrokenUTF8) {
			// Go's scanner tolerates invalid UTF-8 inside strings, so this
			// mode's violation is only visible at the encoding level. It
			// has its own test below.
			continue
		}
		p, err := Malformed(MalformedParams{Mode: mode})
		data := renderPayload(t, p, err)
		if json.Valid(data) {
			t.Errorf("mode %s produced text a strict parser accepts: %s", mode, data)
		}
	}
}

func TestMalformedIsDeterministic(t *testing.T) {
	for _, mode := range Modes() {
		p1, err1 := Malformed(MalformedParams{Mode: mode})
		first := renderPayload(t, p1, err1)
		p2, err2 := Malformed(MalformedParams{Mode: mode})
		second := renderPayload(t, p2, err2)
		if !bytes.Equal(first, second) {
			t.Errorf("mode %s is not deterministic", mode)
		}
	}
}

func TestMalformedUnclosedBracketHasOneExcessOpener(t *testing.T) {
	p, err := Malformed(MalformedParams{Mode: string(ModeUnclosedBracket)})
	data := renderPayload(t, p, err)

	opens := bytes.Count(data, []byte("{")) + bytes.Count(data, []byte("["))
	closes := bytes.Count(data, []byte("}")) + bytes.Count(data, []byte("]"))
	if opens-closes != 1 {
		t.Errorf("openers - closers = %d, want exactly 1", opens-closes)
	}
}

func TestMalformedUnescapedControlByte(t *testing.T) {
	p, err := Malformed(MalformedParams{Mode: string(ModeUnescapedControl)})
	data := renderPayload(t, p, err)
	if bytes.IndexByte(data, 0x01) < 0 {
		t.Error("control byte missing from payload")
	}
}

func TestMalformedBrokenUTF8(t *testing.T) {
	p, err := Malformed(MalformedParams{Mode: string(ModeBrokenUTF8)})
	data := renderPayload(t, p, err)
	if utf8.Valid(data) {
		t.Error("broken-utf8 payload decodes as valid UTF-8")
	}
}

func TestMalformedUnknownMode(t *testing.T) {
	_, err := Malformed(MalformedParams{Mode: "nonsense"})
	if !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("Expected ErrUnknownMode, got %v", err)
	}
	if !strings.Contains(err.Error(), string(ModeTrailingComma)) {
		t.Errorf("error does not list valid modes: %v", err)
	}
}
