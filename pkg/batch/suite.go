package batch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/JonasFriedli/DestructiveJSON/pkg/payload"
)

// itemSpec is one suite entry. Numeric fields are pointers so an explicit
// zero survives parsing and only omitted fields fall back to defaults.
type itemSpec struct {
	Kind   string `yaml:"kind"`
	Output string `yaml:"output,omitempty"`
	Depth  *int   `yaml:"depth,omitempty"`
	Arrays bool   `yaml:"arrays,omitempty"`
	Count  *int   `yaml:"count,omitempty"`
	Prefix string `yaml:"prefix,omitempty"`
	Length *int   `yaml:"length,omitempty"`
	Target string `yaml:"target,omitempty"`
	Mode   string `yaml:"mode,omitempty"`
	Key    string `yaml:"key,omitempty"`
	Repeat *int   `yaml:"repeat,omitempty"`
	Long   *int   `yaml:"long,omitempty"`
}

// suiteFile is the on-disk shape of a payload suite.
type suiteFile struct {
	Payloads []itemSpec `yaml:"payloads"`
}

// LoadSuite reads a YAML suite describing an arbitrary batch. Only an
// unreadable or unparsable file fails here; bad kinds or parameters inside
// an entry surface later as per-item skips, keeping the rest of the suite
// alive.
func LoadSuite(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading suite %s: %v", payload.ErrIO, path, err)
	}
	var sf suiteFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing suite %s: %w", path, err)
	}
	if len(sf.Payloads) == 0 {
		return nil, fmt.Errorf("suite %s lists no payloads", path)
	}
	items := make([]Item, 0, len(sf.Payloads))
	for _, spec := range sf.Payloads {
		items = append(items, spec.item())
	}
	return items, nil
}

// item converts a parsed entry into a batch item, filling in defaults for
// anything the suite left out.
func (s itemSpec) item() Item {
	req := payload.NewRequest(payload.Kind(s.Kind))
	if s.Depth != nil {
		req.Nested.Depth = *s.Depth
	}
	req.Nested.Arrays = s.Arrays
	if s.Count != nil {
		req.ManyKeys.Count = *s.Count
		req.Mixed.Count = *s.Count
	}
	if s.Prefix != "" {
		req.ManyKeys.Prefix = s.Prefix
	}
	if s.Length != nil {
		req.LongKey.Length = *s.Length
		req.HugeArray.Length = *s.Length
	}
	if s.Target != "" {
		req.Dunder.Target = s.Target
	}
	if s.Mode != "" {
		req.Malformed.Mode = s.Mode
	}
	if s.Key != "" {
		req.Duplicate.Key = s.Key
	}
	if s.Repeat != nil {
		req.Duplicate.Repeat = *s.Repeat
	}
	if s.Long != nil {
		req.Mixed.Long = *s.Long
	}
	name := s.Output
	if name == "" {
		name = FileName(req)
	}
	return Item{Request: req, FileName: name}
}
