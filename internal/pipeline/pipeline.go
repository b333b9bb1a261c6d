package pipeline

import (
	"fmt"

	"github.com/hollis-lab/perturb/internal/corrupt"
	"github.com/hollis-lab/perturb/internal/export"
	"github.com/hollis-lab/perturb/internal/model"
	"github.com/hollis-lab/perturb/internal/source"
)

// Pipeline connects a source normalizer, an optional corruptor, and a TSV
// exporter into a processing pipeline.
type Pipeline struct {
	source    source.Normalizer
	corruptor *corrupt.Corruptor
	exporter  *export.Writer
}

// Result summarizes a pipeline run.
type Result struct {
	Read    int // records normalized from the source
	Skipped int // source rows dropped for data-quality reasons
	Written int // records exported
}

// New creates a Pipeline from the given components. The corruptor may be
// nil when no corruption stage is wanted.
func New(src source.Normalizer, cor *corrupt.Corruptor, exp *export.Writer) *Pipeline {
	return &Pipeline{
		source:    src,
		corruptor: cor,
		exporter:  exp,
	}
}

// Run normalizes the file at path, corrupts the records at the given
// severity (SeverityNone or a nil corruptor skips that stage), and exports
// the result.
func (p *Pipeline) Run(path string, sev model.Severity) (Result, error) {
	records, err := p.source.Normalize(path)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline normalize: %w", err)
	}
	res := Result{Read: len(records), Skipped: p.source.Skipped()}

	if p.corruptor != nil && sev != model.SeverityNone {
		records = p.corruptor.Apply(records, sev)
	}

	if err := p.exporter.WriteAll(records); err != nil {
		return res, fmt.Errorf("pipeline export: %w", err)
	}
	res.Written = len(records)
	return res, nil
}

// Close shuts down the exporter.
func (p *Pipeline) Close() error {
	return p.exporter.Close()
}
