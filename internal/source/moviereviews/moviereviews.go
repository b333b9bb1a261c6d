package moviereviews

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hollis-lab/perturb/internal/model"
	"github.com/hollis-lab/perturb/internal/source"
)

func init() {
	source.Register("movies", func() source.Normalizer {
		return &Normalizer{}
	})
}

// Normalizer reads a header CSV of movie reviews with at least the
// `review` and `sentiment` columns.
type Normalizer struct {
	skipped int
}

func (n *Normalizer) Normalize(path string) (model.RecordSet, error) {
	n.skipped = 0

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("moviereviews: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("moviereviews: read header: %w", err)
	}

	reviewCol, sentimentCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "review":
			reviewCol = i
		case "sentiment":
			sentimentCol = i
		}
	}
	if reviewCol < 0 || sentimentCol < 0 {
		return nil, fmt.Errorf("moviereviews: %s: missing required columns review/sentiment (header: %v)", path, header)
	}

	var records model.RecordSet
	for id := 0; ; id++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("moviereviews: row %d: %w", id, err)
		}

		// Reviews embed HTML line breaks; replace with a space, not removal.
		text := strings.TrimSpace(strings.ReplaceAll(row[reviewCol], "<br />", " "))
		records = append(records, model.Record{
			ID:    id,
			Text:  text,
			Label: row[sentimentCol],
		})
	}
	return records, nil
}

// Skipped is always 0: the movie-review format assumes well-formed input
// and drops nothing.
func (n *Normalizer) Skipped() int {
	return n.skipped
}
