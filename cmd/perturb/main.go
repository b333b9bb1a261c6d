package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/hollis-lab/perturb/internal/config"
)

func main() {
	// .env is optional; env vars and flags win over it.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("perturb: .env file not loaded", "error", err)
	}

	if err := newRootCmd(config.Load()).Execute(); err != nil {
		slog.Error("perturb: command failed", "error", err)
		os.Exit(1)
	}
}
