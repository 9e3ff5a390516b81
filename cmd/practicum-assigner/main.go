// Package main provides the CLI entrypoint for practicum-assigner.
//
// practicum-assigner places participants into capacity-limited activities
// from their ranked preferences:
//   - Reads the activity list and the participant preference export
//   - Completes every ranking and builds the slot cost matrix
//   - Solves the minimum-cost assignment
//   - Writes the result table and prints a summary
//
// Usage:
//
//	practicum-assigner [flags] [participants output activities]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"practicum-assigner/internal/assign"
	"practicum-assigner/internal/config"
	"practicum-assigner/internal/diagnostic"
	"practicum-assigner/internal/ingest"
	"practicum-assigner/internal/model"
	"practicum-assigner/internal/report"
	"practicum-assigner/internal/stats"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	start := time.Now()

	cfg, opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Fix the seed up front; it is logged even when the run fails.
	if cfg.Seed == nil {
		seed := rand.Uint64()
		cfg.Seed = &seed
	}
	logger.Info("run seed", "seed", *cfg.Seed)

	if opts.saveConfig != "" {
		if err := config.WriteFile(cfg, opts.saveConfig); err != nil {
			logger.Error("saving configuration failed", "error", err)
			return exitError
		}
	}

	if err := execute(cfg, stdout, logger); err != nil {
		logger.Error("assignment failed", "error", err, "seed", *cfg.Seed)
		return exitError
	}

	fmt.Fprintf(stdout, "Result written to %s\n", cfg.Output)
	fmt.Fprintf(stdout, "Approximate runtime: %.2f sec\n", time.Since(start).Seconds())
	fmt.Fprintln(stdout, "Done...")

	return exitOK
}

// cliOptions are the flags that steer the command rather than the run.
type cliOptions struct {
	verbose    bool
	saveConfig string
}

// parseArgs merges the optional config file with flags and positional
// arguments; the command line wins.
func parseArgs(args []string, stderr io.Writer) (*config.Config, cliOptions, error) {
	fs := flag.NewFlagSet("practicum-assigner", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath        = fs.String("config", "", "YAML run configuration")
		participants      = fs.String("participants", "", "participant preference CSV or xlsx")
		activities        = fs.String("activities", "", "activity file with capacity;name lines")
		output            = fs.String("output", "", "result CSV or xlsx to write")
		summary           = fs.String("summary", "", "optional YAML summary to write")
		saveConfig        = fs.String("save-config", "", "write the effective configuration, seed included, as YAML")
		delimiter         = fs.String("delimiter", "", "participant CSV delimiter (default \",\")")
		sheet             = fs.String("sheet", "", "participant xlsx worksheet (default \"Sheet1\")")
		activityDelimiter = fs.String("activity-delimiter", "", "activity file delimiter (default \";\")")
		verbose           = fs.Bool("v", false, "debug logging")
	)

	var seed *uint64
	fs.Func("seed", "random seed for reproducible runs", func(s string) error {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q", s)
		}
		seed = &v
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return nil, cliOptions{}, err
	}

	cfg := &config.Config{}
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			return nil, cliOptions{}, err
		}
		cfg = loaded
	}

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 3:
		cfg.Participants, cfg.Output, cfg.Activities = rest[0], rest[1], rest[2]
	default:
		return nil, cliOptions{}, fmt.Errorf("want 0 or 3 positional arguments (participants output activities), got %d", len(rest))
	}

	override(&cfg.Participants, *participants)
	override(&cfg.Activities, *activities)
	override(&cfg.Output, *output)
	override(&cfg.Summary, *summary)
	override(&cfg.Delimiter, *delimiter)
	override(&cfg.Sheet, *sheet)
	override(&cfg.ActivityDelimiter, *activityDelimiter)
	if seed != nil {
		cfg.Seed = seed
	}

	config.ApplyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, cliOptions{}, err
	}

	return cfg, cliOptions{verbose: *verbose, saveConfig: *saveConfig}, nil
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func execute(cfg *config.Config, stdout io.Writer, logger *slog.Logger) error {
	activities, err := ingest.LoadActivitiesFile(cfg.Activities, cfg.ActivityDelimiter)
	if err != nil {
		return err
	}

	sheet, err := ingest.LoadParticipantsFile(cfg.Participants, ingest.ParticipantOptions{
		Delimiter: cfg.DelimiterRune(),
		Sheet:     cfg.Sheet,
		Columns:   cfg.Columns,
	})
	if err != nil {
		return err
	}
	logger.Debug("input loaded",
		"participants", len(sheet.Participants), "activities", len(activities), "columns", sheet.Columns)

	roster, err := model.NewRoster(sheet.Participants, activities)
	if err != nil {
		return err
	}

	logger.Debug("roster validated", "places", roster.TotalCapacity())

	diags := sheet.Diagnostics
	diags.Merge(roster.Diagnostics())
	logDiagnostics(logger, diags)

	out, err := assign.Run(roster, assign.WithSeed(*cfg.Seed), assign.WithLogger(logger))
	if err != nil {
		return err
	}

	summary := stats.Summarize(roster.Activities(), out.Results)
	if err := checkSummary(summary); err != nil {
		return err
	}

	if err := report.WriteText(stdout, summary); err != nil {
		return err
	}

	if err := report.WriteResultsFile(cfg.Output, out.Results); err != nil {
		return err
	}

	if cfg.Summary != "" {
		if err := report.WriteSummaryFile(cfg.Summary, summary); err != nil {
			return err
		}
	}

	return nil
}

// checkSummary rejects an assignment that leaves someone out or overfills an
// activity. Both mean the solver broke its contract.
func checkSummary(s stats.Summary) error {
	if n := s.Assigned(); n != s.Participants {
		return fmt.Errorf("assigned %d of %d participants", n, s.Participants)
	}

	if over := s.Overbooked(); len(over) > 0 {
		return fmt.Errorf("activity %d (%s) holds %d participants for %d places",
			over[0].ID, over[0].Name, over[0].Assigned, over[0].Capacity)
	}

	return nil
}

func logDiagnostics(logger *slog.Logger, d diagnostic.Diagnostics) {
	for _, w := range d.Warnings {
		logger.Warn(w.String(), "code", w.Code)
	}

	for _, i := range d.Infos {
		logger.Debug(i.String(), "code", i.Code)
	}
}
