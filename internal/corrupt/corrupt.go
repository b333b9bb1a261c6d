// Package corrupt injects synthetic spelling errors into record text to
// produce degraded evaluation sets for classifier robustness testing.
package corrupt

import (
	"math/rand"
	"slices"
	"strings"

	"github.com/hollis-lab/perturb/internal/model"
)

type editKind int

const (
	substitution editKind = iota
	transposition
	omission
	duplication
	scramble

	numEditKinds
)

const lowercase = "abcdefghijklmnopqrstuvwxyz"

// Compounding probabilities: after each edit, roll for another pass.
const (
	compoundSevere   = 0.5
	compoundModerate = 0.2
)

// Corruptor applies stochastic character-level edits to text. The random
// source is injected so runs are reproducible under a fixed seed.
type Corruptor struct {
	rng *rand.Rand
}

// New creates a Corruptor drawing randomness from rng.
func New(rng *rand.Rand) *Corruptor {
	return &Corruptor{rng: rng}
}

// Apply returns a new record set with each record's text corrupted at the
// given severity. IDs and labels pass through unchanged; the input set is
// not mutated.
func (c *Corruptor) Apply(records model.RecordSet, sev model.Severity) model.RecordSet {
	out := make(model.RecordSet, len(records))
	for i, rec := range records {
		rec.Text = c.Corrupt(rec.Text, sev)
		out[i] = rec
	}
	return out
}

// Corrupt perturbs a sampled subset of words in text. The word budget is
// max(1, n/50) at light, max(1, n/10) at moderate, and max(1, n/5) at
// severe. Word positions are drawn uniformly with replacement, so one word
// may be edited more than once per pass. Words are rejoined with single
// spaces; original whitespace runs are not preserved.
//
// Empty text is a no-op.
func (c *Corruptor) Corrupt(text string, sev model.Severity) string {
	if sev == model.SeverityNone {
		return text
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	budget := wordBudget(len(words), sev)
	for i := 0; i < budget; i++ {
		idx := c.rng.Intn(len(words))
		words[idx] = c.introduceError(words[idx], sev)
	}
	return strings.Join(words, " ")
}

func wordBudget(n int, sev model.Severity) int {
	var target int
	switch sev {
	case model.Light:
		target = n / 50 // ~2% of words
	case model.Moderate:
		target = n / 10 // ~10%
	case model.Severe:
		target = n / 5 // ~20%
	}
	return max(1, target)
}

// introduceError applies one random edit to word, then keeps compounding
// further edits with a severity-dependent continuation probability (0.5 at
// severe, 0.2 at moderate, never at light). The loop terminates with
// probability 1; the expected extra-edit count stays small.
func (c *Corruptor) introduceError(word string, sev model.Severity) string {
	for {
		// Too short to edit. Also ends compounding once omissions have
		// shrunk the word below two runes.
		if len([]rune(word)) < 2 {
			return word
		}

		kind := editKind(c.rng.Intn(int(numEditKinds)))
		word = c.applyEdit(kind, word, sev)

		switch {
		case sev == model.Severe && c.rng.Float64() < compoundSevere:
		case sev == model.Moderate && c.rng.Float64() < compoundModerate:
		default:
			return word
		}
	}
}

// applyEdit performs a single edit of the given kind on word. Two kinds
// can no-op: transposition needs more than two runes, and scramble only
// fires at severe severity. Neither re-rolls the kind.
func (c *Corruptor) applyEdit(kind editKind, word string, sev model.Severity) string {
	r := []rune(word)
	switch kind {
	case substitution:
		i := c.rng.Intn(len(r))
		r[i] = rune(lowercase[c.rng.Intn(len(lowercase))])
	case transposition:
		if len(r) > 2 {
			i := c.rng.Intn(len(r) - 1)
			r[i], r[i+1] = r[i+1], r[i]
		}
	case omission:
		i := c.rng.Intn(len(r))
		r = slices.Delete(r, i, i+1)
	case duplication:
		i := c.rng.Intn(len(r))
		r = slices.Insert(r, i, r[i])
	case scramble:
		if sev == model.Severe {
			c.rng.Shuffle(len(r), func(i, j int) {
				r[i], r[j] = r[j], r[i]
			})
		}
	}
	return string(r)
}
