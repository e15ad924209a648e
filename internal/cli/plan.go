package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan <operation> <a> <b>",
	Short: "Show the fill order of a problem",
	Long: `Show the fill order of a problem.

Every interactive cell is listed in the only order in which the tutor accepts
it, with the expected digit and the explanation shown as a hint.`,
	Example: `  arithtutor plan div 975 4
  arithtutor plan mul 47 36 --json`,
	Args: cobra.ExactArgs(3),
	RunE: runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	plan, err := parseProblemArgs(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return outputJSON(out, plan)
	}

	PrintSection(out, plan.Problem())
	if len(plan.Targets) == 0 {
		PrintEmptyState(out, "Nothing to fill in.")
		return nil
	}

	rows := make([][]string, 0, len(plan.Targets))
	for i, tg := range plan.Targets {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			tg.Addr.String(),
			tg.Kind.String(),
			string(tg.Expected),
			tg.Hint,
		})
	}
	PrintTable(out, []string{"#", "CELL", "KIND", "DIGIT", "HINT"}, rows)
	fmt.Fprintln(out)
	PrintInfo(out, PrintCount(len(plan.Targets), "cell", "cells"))
	return nil
}
