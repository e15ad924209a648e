package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/arithtutor/internal/engine"
	"github.com/danieljhkim/arithtutor/internal/planner"
	"github.com/danieljhkim/arithtutor/internal/render"
)

var solveCmd = &cobra.Command{
	Use:   "solve <operation> <a> <b>",
	Short: "Show the worked solution of a problem",
	Long: `Show the worked solution of a problem.

The layout is filled in exactly as the tutor does when the learner asks to
reveal the solution.`,
	Example: `  arithtutor solve div 975 4
  arithtutor solve sub 503 78 --json`,
	Args: cobra.ExactArgs(3),
	RunE: runSolve,
}

// solutionOutput is the JSON form of a worked solution.
type solutionOutput struct {
	Problem string         `json:"problem"`
	Answer  string         `json:"answer"`
	Result  planner.Result `json:"result"`
}

func runSolve(cmd *cobra.Command, args []string) error {
	plan, err := parseProblemArgs(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return outputJSON(out, solutionOutput{
			Problem: plan.Problem(),
			Answer:  render.ResultLine(plan),
			Result:  plan.Result,
		})
	}

	sess := engine.New(plan, nil, nil, logger)
	sess.Reveal()

	theme := newTheme(out)
	fmt.Fprintln(out, theme.Layout(sess.Snapshot()))
	PrintSuccess(out, render.ResultLine(plan))
	return nil
}
