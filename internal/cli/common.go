package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/arithtutor/internal/config"
	"github.com/danieljhkim/arithtutor/internal/planner"
	"github.com/danieljhkim/arithtutor/internal/problem"
	"github.com/danieljhkim/arithtutor/internal/render"
)

var (
	// settings is the configuration resolved for the running command
	settings = config.Default()

	// logger is the structured logger for the running command
	logger = slog.New(slog.DiscardHandler)
)

// loadSettings resolves config file, environment and flags before any command runs.
func loadSettings(cmd *cobra.Command, args []string) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return fmt.Errorf("failed to get config paths: %w", err)
	}

	cfg, err := config.Load(paths.Config)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seedFlag
	}
	if flags.Changed("no-color") {
		cfg.Color = !noColorFlag
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevelFlag
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	settings = cfg
	color.NoColor = color.NoColor || !cfg.Color
	logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	return nil
}

// newLogger creates a text logger writing to w at the given level.
func newLogger(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelWarn
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// newGenerator creates a problem generator from the configured seed, drawing
// a fresh one when the seed is 0. It returns the seed actually used.
func newGenerator() (*problem.Generator, int64, error) {
	seed := settings.Seed
	if seed == 0 {
		var err error
		seed, err = problem.NewSeed()
		if err != nil {
			return nil, 0, err
		}
	}
	logger.Debug("problem generator seeded", "seed", seed)
	return problem.NewSeededGenerator(seed), seed, nil
}

// newTheme creates a layout theme honoring the color setting.
func newTheme(w io.Writer) *render.Theme {
	return render.NewTheme(w, settings.Color && !color.NoColor)
}

// operationArg returns the operation named by args[0], or the configured default.
func operationArg(args []string) (planner.Operation, error) {
	if len(args) > 0 {
		return planner.ParseOperation(args[0])
	}
	return settings.Op(), nil
}

// parseProblemArgs parses "<operation> <a> <b>".
func parseProblemArgs(args []string) (*planner.Plan, error) {
	op, err := planner.ParseOperation(args[0])
	if err != nil {
		return nil, err
	}
	a, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, fmt.Errorf("invalid operand %q: %w", args[1], err)
	}
	b, err := strconv.Atoi(args[2])
	if err != nil {
		return nil, fmt.Errorf("invalid operand %q: %w", args[2], err)
	}
	return planner.New(op, planner.Operands{A: a, B: b})
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
