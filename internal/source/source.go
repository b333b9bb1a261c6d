package source

import (
	"github.com/hollis-lab/perturb/internal/model"
)

// Normalizer maps one external file format onto the canonical record schema.
type Normalizer interface {
	// Normalize reads the file at path and returns the canonical records.
	// Missing columns, malformed rows, and decode failures are fatal;
	// per-record data-quality problems are skipped, not errors.
	Normalize(path string) (model.RecordSet, error)

	// Skipped reports how many records the last Normalize call dropped
	// for data-quality reasons.
	Skipped() int
}
