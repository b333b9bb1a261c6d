package corrupt

import (
	"math/rand"
	"sort"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/hollis-lab/perturb/internal/model"
)

func newTestCorruptor(seed int64) *Corruptor {
	return New(rand.New(rand.NewSource(seed)))
}

func TestApplyPreservesIDsLabelsAndInput(t *testing.T) {
	records := model.RecordSet{
		{ID: 0, Text: "one of the other reviewers has mentioned", Label: "positive"},
		{ID: 3, Text: "a wonderful little production", Label: "negative"},
		{ID: 7, Text: "the filming technique is very unassuming", Label: "neutral"},
	}
	original := make(model.RecordSet, len(records))
	copy(original, records)

	out := newTestCorruptor(1).Apply(records, model.Severe)

	if len(out) != len(records) {
		t.Fatalf("got %d records, want %d", len(out), len(records))
	}
	for i := range out {
		if out[i].ID != records[i].ID {
			t.Errorf("record %d: id = %d, want %d", i, out[i].ID, records[i].ID)
		}
		if out[i].Label != records[i].Label {
			t.Errorf("record %d: label = %q, want %q", i, out[i].Label, records[i].Label)
		}
	}
	// The input set must be left untouched.
	for i := range records {
		if records[i] != original[i] {
			t.Errorf("input record %d mutated: %+v", i, records[i])
		}
	}
}

func TestCorruptDeterministicUnderSeed(t *testing.T) {
	const text = "the stock market crashed today due to weak economic indicators across several sectors"
	for _, sev := range []model.Severity{model.Light, model.Moderate, model.Severe} {
		a := newTestCorruptor(99).Corrupt(text, sev)
		b := newTestCorruptor(99).Corrupt(text, sev)
		if a != b {
			t.Errorf("severity %v: same seed produced %q and %q", sev, a, b)
		}
	}
}

func TestCorruptEmptyTextNoop(t *testing.T) {
	c := newTestCorruptor(1)
	for _, text := range []string{"", "   ", "\t\n"} {
		if got := c.Corrupt(text, model.Severe); got != text {
			t.Errorf("Corrupt(%q) = %q, want unchanged", text, got)
		}
	}
}

func TestCorruptSeverityNoneNoop(t *testing.T) {
	const text = "left  exactly\tas-is"
	if got := newTestCorruptor(1).Corrupt(text, model.SeverityNone); got != text {
		t.Errorf("Corrupt at none = %q, want %q", got, text)
	}
}

func TestShortWordsNeverAltered(t *testing.T) {
	c := newTestCorruptor(5)
	for _, sev := range []model.Severity{model.Light, model.Moderate, model.Severe} {
		for i := 0; i < 200; i++ {
			if got := c.Corrupt("a", sev); got != "a" {
				t.Fatalf("severity %v: one-char word altered to %q", sev, got)
			}
		}
	}
}

func TestCorruptLightBudgetIsOneWord(t *testing.T) {
	const text = "the quick brown fox jumps over the lazy dog" // 9 words
	want := strings.Fields(text)

	changed := false
	for seed := int64(0); seed < 50; seed++ {
		got := strings.Fields(newTestCorruptor(seed).Corrupt(text, model.Light))
		if len(got) != len(want) {
			t.Fatalf("seed %d: got %d words, want %d", seed, len(got), len(want))
		}
		diff := 0
		for i := range got {
			if got[i] != want[i] {
				diff++
			}
		}
		// Budget is max(1, 9/50) = 1; light severity never compounds, so
		// at most one word position can differ per run.
		if diff > 1 {
			t.Fatalf("seed %d: %d words changed, want at most 1 (%q)", seed, diff, got)
		}
		if diff == 1 {
			changed = true
		}
	}
	if !changed {
		t.Error("no seed out of 50 produced a visible edit")
	}
}

func TestCorruptCollapsesWhitespace(t *testing.T) {
	got := newTestCorruptor(1).Corrupt("alpha  beta\tgamma", model.Light)
	if strings.Contains(got, "  ") || strings.Contains(got, "\t") {
		t.Errorf("whitespace runs survived: %q", got)
	}
}

func TestCorruptRuneSafe(t *testing.T) {
	c := newTestCorruptor(7)
	for i := 0; i < 100; i++ {
		got := c.Corrupt("naïve café résumé über señor", model.Severe)
		if !utf8.ValidString(got) {
			t.Fatalf("invalid UTF-8 after corruption: %q", got)
		}
	}
}

func TestWordBudget(t *testing.T) {
	cases := []struct {
		n    int
		sev  model.Severity
		want int
	}{
		{9, model.Light, 1},
		{50, model.Light, 1},
		{100, model.Light, 2},
		{9, model.Moderate, 1},
		{20, model.Moderate, 2},
		{9, model.Severe, 1},
		{10, model.Severe, 2},
		{100, model.Severe, 20},
	}
	for _, c := range cases {
		if got := wordBudget(c.n, c.sev); got != c.want {
			t.Errorf("wordBudget(%d, %v) = %d, want %d", c.n, c.sev, got, c.want)
		}
	}
}

func sortedRunes(s string) string {
	r := []rune(s)
	sort.Slice(r, func(i, j int) bool { return r[i] < r[j] })
	return string(r)
}

func TestApplyEditSubstitution(t *testing.T) {
	c := newTestCorruptor(1)
	for i := 0; i < 50; i++ {
		got := c.applyEdit(substitution, "word", model.Light)
		if utf8.RuneCountInString(got) != 4 {
			t.Fatalf("substitution changed length: %q", got)
		}
	}
}

func TestApplyEditTransposition(t *testing.T) {
	c := newTestCorruptor(1)

	// Length 2 is a silent no-op; the kind is not re-rolled.
	for i := 0; i < 50; i++ {
		if got := c.applyEdit(transposition, "ab", model.Severe); got != "ab" {
			t.Fatalf("transposition on 2-rune word: got %q, want ab", got)
		}
	}
	for i := 0; i < 50; i++ {
		got := c.applyEdit(transposition, "word", model.Light)
		if sortedRunes(got) != sortedRunes("word") {
			t.Fatalf("transposition changed rune multiset: %q", got)
		}
	}
}

func TestApplyEditOmission(t *testing.T) {
	c := newTestCorruptor(1)
	if got := c.applyEdit(omission, "ab", model.Light); utf8.RuneCountInString(got) != 1 {
		t.Fatalf("omission: got %q, want single rune", got)
	}
}

func TestApplyEditDuplication(t *testing.T) {
	c := newTestCorruptor(1)
	got := c.applyEdit(duplication, "ab", model.Light)
	if got != "aab" && got != "abb" {
		t.Fatalf("duplication: got %q, want aab or abb", got)
	}
}

func TestApplyEditScramble(t *testing.T) {
	c := newTestCorruptor(1)

	// Scramble only fires at severe; lower severities are silent no-ops.
	for _, sev := range []model.Severity{model.Light, model.Moderate} {
		if got := c.applyEdit(scramble, "abcdef", sev); got != "abcdef" {
			t.Fatalf("scramble at %v: got %q, want unchanged", sev, got)
		}
	}
	got := c.applyEdit(scramble, "abcdef", model.Severe)
	if sortedRunes(got) != "abcdef" {
		t.Fatalf("scramble changed rune multiset: %q", got)
	}
}
