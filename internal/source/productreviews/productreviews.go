package productreviews

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hollis-lab/perturb/internal/model"
	"github.com/hollis-lab/perturb/internal/source"
)

// Reviews can run long; allow lines up to 1MB.
const maxLineSize = 1 << 20

func init() {
	source.Register("products", func() source.Normalizer {
		return &Normalizer{}
	})
}

// Normalizer reads line-delimited JSON product reviews and derives the
// sentiment label from the star rating.
type Normalizer struct {
	skipped int
}

type review struct {
	ReviewText string   `json:"reviewText"`
	Overall    *float64 `json:"overall"`
}

func (n *Normalizer) Normalize(path string) (model.RecordSet, error) {
	n.skipped = 0

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("productreviews: %w", err)
	}
	defer f.Close()

	var records model.RecordSet
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	// IDs count every input line, dropped ones included, so gaps in the
	// output IDs are expected.
	id := -1
	for scanner.Scan() {
		id++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			n.skipped++
			continue
		}

		var rev review
		if err := json.Unmarshal([]byte(line), &rev); err != nil {
			return nil, fmt.Errorf("productreviews: line %d: %w", id, err)
		}

		text := strings.TrimSpace(rev.ReviewText)
		if text == "" {
			n.skipped++
			continue
		}
		label, ok := labelForRating(rev.Overall)
		if !ok {
			n.skipped++
			continue
		}

		records = append(records, model.Record{ID: id, Text: text, Label: label})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("productreviews: read: %w", err)
	}

	if n.skipped > 0 {
		slog.Info("productreviews: skipped records", "path", path, "skipped", n.skipped)
	}
	return records, nil
}

func (n *Normalizer) Skipped() int {
	return n.skipped
}

// labelForRating maps a star rating onto a sentiment label. Ratings
// outside {1..5} (half stars included) have no label and the record
// is dropped.
func labelForRating(overall *float64) (string, bool) {
	if overall == nil {
		return "", false
	}
	switch *overall {
	case 1.0, 2.0:
		return "negative", true
	case 3.0:
		return "neutral", true
	case 4.0, 5.0:
		return "positive", true
	}
	return "", false
}
