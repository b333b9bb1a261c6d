package model

import "fmt"

// Severity is the corruption intensity tier. It controls the fraction of
// words edited per text and the probability of compounding a second edit
// on an already-edited word.
type Severity int

const (
	// SeverityNone disables corruption entirely.
	SeverityNone Severity = iota
	Light
	Moderate
	Severe
)

// ParseSeverity converts a string ("light", "moderate", "severe", "none",
// or the digits 0-3) to a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "none", "0", "":
		return SeverityNone, nil
	case "light", "1":
		return Light, nil
	case "moderate", "2":
		return Moderate, nil
	case "severe", "3":
		return Severe, nil
	}
	return SeverityNone, fmt.Errorf("unknown severity: %q", s)
}

func (s Severity) String() string {
	switch s {
	case Light:
		return "light"
	case Moderate:
		return "moderate"
	case Severe:
		return "severe"
	default:
		return "none"
	}
}
