package perturb

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hollis-lab/perturb/internal/corrupt"
	"github.com/hollis-lab/perturb/internal/model"
	"github.com/hollis-lab/perturb/internal/source"

	// Register source format implementations.
	_ "github.com/hollis-lab/perturb/internal/source/finnews"
	_ "github.com/hollis-lab/perturb/internal/source/moviereviews"
	_ "github.com/hollis-lab/perturb/internal/source/productreviews"
)

// Record is the canonical {id, text, label} tuple shared by all sources.
type Record = model.Record

// RecordSet is an ordered sequence of records.
type RecordSet = model.RecordSet

// Severity is the corruption intensity tier.
type Severity = model.Severity

const (
	SeverityNone = model.SeverityNone
	Light        = model.Light
	Moderate     = model.Moderate
	Severe       = model.Severe
)

// ParseSeverity converts a string ("light", "moderate", "severe", "none",
// or the digits 0-3) to a Severity.
func ParseSeverity(s string) (Severity, error) {
	return model.ParseSeverity(s)
}

// Formats returns the names of all registered source formats.
func Formats() []string {
	return source.Formats()
}

// Perturber normalizes dataset files and corrupts record text. Not safe
// for concurrent use: all corruption draws from one random source.
type Perturber struct {
	corruptor *corrupt.Corruptor
}

// New creates a Perturber. Without WithSeed or WithRand the corruption RNG
// is time-seeded.
func New(opts ...Option) *Perturber {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Perturber{corruptor: corrupt.New(o.rng)}
}

// NormalizeFile reads the file at path with the named source format and
// returns the canonical records.
func (p *Perturber) NormalizeFile(format, path string) (RecordSet, error) {
	ctor, err := source.Get(format)
	if err != nil {
		return nil, fmt.Errorf("perturb: %w", err)
	}
	records, err := ctor().Normalize(path)
	if err != nil {
		return nil, fmt.Errorf("perturb: %w", err)
	}
	return records, nil
}

// CorruptRecords returns a new record set with every record's text
// corrupted at the given severity. IDs and labels are preserved; the input
// set is left untouched.
func (p *Perturber) CorruptRecords(records RecordSet, sev Severity) RecordSet {
	return p.corruptor.Apply(records, sev)
}

// CorruptText corrupts a single text at the given severity.
func (p *Perturber) CorruptText(text string, sev Severity) string {
	return p.corruptor.Corrupt(text, sev)
}
