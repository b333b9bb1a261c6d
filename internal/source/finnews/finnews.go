package finnews

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/hollis-lab/perturb/internal/model"
	"github.com/hollis-lab/perturb/internal/source"
)

func init() {
	source.Register("finnews", func() source.Normalizer {
		return &Normalizer{}
	})
}

// Normalizer reads a headerless two-column CSV (sentiment, text) of
// financial news headlines. The file is Latin-1 encoded; every byte maps
// to a rune, so the decode is tolerant of stray high bytes.
type Normalizer struct {
	skipped int
}

func (n *Normalizer) Normalize(path string) (model.RecordSet, error) {
	n.skipped = 0

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("finnews: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.FieldsPerRecord = 2

	var records model.RecordSet
	for id := 0; ; id++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("finnews: row %d: %w", id, err)
		}

		label := strings.ToLower(strings.TrimSpace(row[0]))
		text := strings.TrimSpace(row[1])
		if label == "" || text == "" {
			n.skipped++
			continue
		}

		records = append(records, model.Record{ID: id, Text: text, Label: label})
	}

	if n.skipped > 0 {
		slog.Info("finnews: skipped records", "path", path, "skipped", n.skipped)
	}
	return records, nil
}

func (n *Normalizer) Skipped() int {
	return n.skipped
}
