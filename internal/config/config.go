package config

import "os"

// Config holds all perturb configuration.
type Config struct {
	Format    string // source format name ("movies", "products", "finnews")
	Severity  string // corruption tier ("none", "light", "moderate", "severe")
	Condition string // literal tag written to every output row
	Output    string // output TSV path; "-" writes to stdout
	Seed      string // RNG seed; empty means time-seeded
	LogLevel  string // "debug", "info", "warn", "error"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Format:    getenv("PERTURB_FORMAT", "movies"),
		Severity:  getenv("PERTURB_SEVERITY", "light"),
		Condition: getenv("PERTURB_CONDITION", "test"),
		Output:    getenv("PERTURB_OUTPUT", "evaluation_data/modified_reviews.tsv"),
		Seed:      os.Getenv("PERTURB_SEED"),
		LogLevel:  getenv("PERTURB_LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
