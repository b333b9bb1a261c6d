package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hollis-lab/perturb/internal/config"
	"github.com/hollis-lab/perturb/internal/corrupt"
	"github.com/hollis-lab/perturb/internal/export"
	"github.com/hollis-lab/perturb/internal/logging"
	"github.com/hollis-lab/perturb/internal/model"
	"github.com/hollis-lab/perturb/internal/pipeline"
	"github.com/hollis-lab/perturb/internal/source"

	// Register source format implementations.
	_ "github.com/hollis-lab/perturb/internal/source/finnews"
	_ "github.com/hollis-lab/perturb/internal/source/moviereviews"
	_ "github.com/hollis-lab/perturb/internal/source/productreviews"
)

var (
	formatName   string
	severityName string
	condition    string
	outputPath   string
	seed         string
)

func newRootCmd(cfg config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "perturb",
		Short:         "Normalize sentiment datasets and inject spelling errors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(outputPath == "-", logging.ParseLevel(cfg.LogLevel))
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&formatName, "format", cfg.Format,
		fmt.Sprintf("source format (%s)", strings.Join(source.Formats(), ", ")))
	pf.StringVar(&condition, "condition", cfg.Condition, "condition tag written to every output row")
	pf.StringVar(&outputPath, "output", cfg.Output, "output TSV path (\"-\" for stdout)")
	pf.StringVar(&seed, "seed", cfg.Seed, "RNG seed for reproducible corruption (empty: time-seeded)")

	normalizeCmd := &cobra.Command{
		Use:   "normalize <input>",
		Short: "Normalize a dataset file and export it as clean TSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(args[0], outputPath, model.SeverityNone)
		},
	}

	corruptCmd := &cobra.Command{
		Use:   "corrupt <input>",
		Short: "Normalize a dataset file and export a corrupted TSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			sev, err := model.ParseSeverity(severityName)
			if err != nil {
				return err
			}
			return runOnce(args[0], outputPath, sev)
		},
		Args: cobra.ExactArgs(1),
	}
	corruptCmd.Flags().StringVar(&severityName, "severity", cfg.Severity,
		"corruption severity (light, moderate, severe)")

	runCmd := &cobra.Command{
		Use:   "run <input>",
		Short: "Export the clean set plus one corrupted set per severity tier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "-" {
				return fmt.Errorf("run writes multiple files; --output must be a path")
			}
			if err := runOnce(args[0], withTag(outputPath, "clean"), model.SeverityNone); err != nil {
				return err
			}
			for _, sev := range []model.Severity{model.Light, model.Moderate, model.Severe} {
				if err := runOnce(args[0], withTag(outputPath, sev.String()), sev); err != nil {
					return err
				}
			}
			return nil
		},
	}

	rootCmd.AddCommand(normalizeCmd, corruptCmd, runCmd)
	return rootCmd
}

// runOnce wires a pipeline for one normalize/corrupt/export pass.
func runOnce(input, output string, sev model.Severity) error {
	ctor, err := source.Get(formatName)
	if err != nil {
		return err
	}

	var cor *corrupt.Corruptor
	if sev != model.SeverityNone {
		rng, err := newRNG(seed)
		if err != nil {
			return err
		}
		cor = corrupt.New(rng)
	}

	var exp *export.Writer
	if output == "-" {
		exp = export.NewStdout(condition)
	} else {
		exp, err = export.New(output, condition)
		if err != nil {
			return err
		}
	}

	p := pipeline.New(ctor(), cor, exp)
	res, err := p.Run(input, sev)
	if cerr := p.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	slog.Info("perturb: run complete",
		"input", input,
		"output", output,
		"severity", sev.String(),
		"read", res.Read,
		"skipped", res.Skipped,
		"written", res.Written,
	)
	return nil
}

func newRNG(s string) (*rand.Rand, error) {
	if s == "" {
		return rand.New(rand.NewSource(time.Now().UnixNano())), nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid seed %q: %w", s, err)
	}
	return rand.New(rand.NewSource(n)), nil
}

// withTag inserts a tag before the path's extension:
// out.tsv + "light" → out_light.tsv.
func withTag(path, tag string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_" + tag + ext
}
