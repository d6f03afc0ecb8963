// Package batch writes a set of payload artifacts into a directory,
// continuing past individual failures so one bad request cannot sink the
// rest of the run.
package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/JonasFriedli/DestructiveJSON/pkg/payload"
)

// Batch defaults, lighter than the subcommand defaults so a full run stays
// quick.
const (
	DefaultBatchDepth  = 200
	DefaultBatchCount  = 20000
	DefaultBatchLength = 2000
)

// Item is one requested artifact: a payload request plus the file it lands
// in.
type Item struct {
	Request  payload.Request
	FileName string
}

// Artifact records one successfully written payload.
type Artifact struct {
	Kind  payload.Kind
	Path  string
	Bytes int
}

// Failure records one item that could not be produced.
type Failure struct {
	Kind     payload.Kind
	FileName string
	Err      error
}

// Report sums up a batch run.
type Report struct {
	Written []Artifact
	Skipped []Failure
}

// Generator writes a batch of payload artifacts into OutDir.
type Generator struct {
	OutDir string
	Items  []Item
	logger *zap.SugaredLogger
}

// New returns a Generator over the given items. A nil logger is replaced
// with a no-op one.
func New(outDir string, items []Item, logger *zap.SugaredLogger) *Generator {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Generator{OutDir: outDir, Items: items, logger: logger}
}

// Run creates the output directory and produces each item in order, one at
// a time. A failing item is logged, recorded in the report, and skipped;
// only an unusable output directory aborts the run.
func (g *Generator) Run() (*Report, error) {
	if err := os.MkdirAll(g.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating %s: %v", payload.ErrIO, g.OutDir, err)
	}
	report := &Report{}
	for _, item := range g.Items {
		path := filepath.Join(g.OutDir, item.FileName)
		n, err := g.produce(item.Request, path)
		if err != nil {
			g.logger.Warnw("skipping artifact",
				"kind", item.Request.Kind, "file", item.FileName, "error", err)
			report.Skipped = append(report.Skipped, Failure{
				Kind: item.Request.Kind, FileName: item.FileName, Err: err,
			})
			continue
		}
		g.logger.Infow("wrote artifact",
			"kind", item.Request.Kind, "path", path, "bytes", n)
		report.Written = append(report.Written, Artifact{
			Kind: item.Request.Kind, Path: path, Bytes: n,
		})
	}
	return report, nil
}

// produce renders the payload fully in memory, then writes it in one shot
// so a failure cannot leave a partial artifact behind.
func (g *Generator) produce(req payload.Request, path string) (int, error) {
	p, err := payload.Build(req)
	if err != nil {
		return 0, err
	}
	data, err := p.Render()
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, fmt.Errorf("%w: writing %s: %v", payload.ErrIO, path, err)
	}
	return len(data), nil
}

// DefaultItems returns one item per catalog kind, in catalog order, with
// the batch defaults applied to depth, key count, and key length.
func DefaultItems(depth, count, keyLength int) []Item {
	catalog := payload.Catalog()
	items := make([]Item, 0, len(catalog))
	for _, kind := range catalog {
		req := payload.NewRequest(kind)
		switch kind {
		case payload.KindNested:
			req.Nested.Depth = depth
		case payload.KindManyKeys:
			req.ManyKeys.Count = count
		case payload.KindLongKey:
			req.LongKey.Length = keyLength
		}
		items = append(items, Item{Request: req, FileName: FileName(req)})
	}
	return items
}

// FileName returns the deterministic artifact name for a request. Malformed
// artifacts carry their mode so distinct probes do not collide.
func FileName(req payload.Request) string {
	switch req.Kind {
	case payload.KindManyKeys:
		return "many.json"
	case payload.KindMalformed:
		return "malformed_" + req.Malformed.Mode + ".json"
	default:
		return string(req.Kind) + ".json"
	}
}
