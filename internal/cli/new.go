package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/arithtutor/internal/engine"
	"github.com/danieljhkim/arithtutor/internal/planner"
)

var newCmd = &cobra.Command{
	Use:   "new [operation]",
	Short: "Draw a random problem and show its empty layout",
	Long: `Draw a random problem and show its empty layout.

The operation defaults to the one in the configuration file. Pass --seed to
draw a reproducible problem; the seed used is always printed.

Operations: division (div), multiplication (mul), addition (add),
subtraction (sub), times_table (times).`,
	Example: `  arithtutor new
  arithtutor new mul --seed 42
  arithtutor new division --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

// problemOutput is the JSON form of a drawn problem.
type problemOutput struct {
	Seed    int64         `json:"seed"`
	Problem string        `json:"problem"`
	Plan    *planner.Plan `json:"plan"`
}

func runNew(cmd *cobra.Command, args []string) error {
	op, err := operationArg(args)
	if err != nil {
		return err
	}

	gen, seed, err := newGenerator()
	if err != nil {
		return err
	}

	plan, err := gen.Plan(op)
	if err != nil {
		return fmt.Errorf("failed to draw %s problem: %w", op, err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return outputJSON(out, problemOutput{Seed: seed, Problem: plan.Problem(), Plan: plan})
	}

	sess := engine.New(plan, nil, nil, logger)
	theme := newTheme(out)
	fmt.Fprintln(out, theme.Layout(sess.Snapshot()))
	PrintLabelValue(out, "Seed", strconv.FormatInt(seed, 10))
	PrintLabelValue(out, "Cells", PrintCount(len(plan.Targets), "cell to fill", "cells to fill"))
	return nil
}
