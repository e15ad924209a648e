package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/arithtutor/internal/engine"
	"github.com/danieljhkim/arithtutor/internal/render"
)

// Keys understood by the play loop besides digits.
const (
	keyReveal  = '?'
	keyRestart = 'r'
	keyNew     = 'n'
	keyHint    = 'h'
	keyQuit    = 'q'
)

var playRounds int

var playCmd = &cobra.Command{
	Use:   "play [operation]",
	Short: "Practice interactively, one digit at a time",
	Long: `Practice interactively, one digit at a time.

The active cell is marked with "?". Type the digit that belongs there and press
enter; several digits may be typed on one line. A wrong digit marks the cell
with "!" and the cell stays active until it is right.

Keys:
  ?   reveal the worked solution
  r   restart the current problem
  n   draw a new problem
  h   toggle hints
  q   quit

With --json the board is not drawn and only the final summary is printed.`,
	Example: `  arithtutor play
  arithtutor play mul --rounds 5
  arithtutor play division --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&playRounds, "rounds", 0, "Stop after this many finished rounds (0 plays until q)")
}

// playSummary is the JSON form of a finished play session.
type playSummary struct {
	SessionID  string        `json:"sessionId"`
	Seed       int64         `json:"seed"`
	Totals     engine.Totals `json:"totals"`
	BestStreak int           `json:"bestStreak"`
}

// player drives one session from line-oriented keyboard input.
type player struct {
	sess   *engine.Session
	theme  *render.Theme
	score  *scoreboard
	out    io.Writer
	quiet  bool
	hints  bool
	rounds int
	played int
}

func runPlay(cmd *cobra.Command, args []string) error {
	op, err := operationArg(args)
	if err != nil {
		return err
	}

	gen, seed, err := newGenerator()
	if err != nil {
		return err
	}

	sess, err := engine.Start(gen, op, nil, logger)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	out := cmd.OutOrStdout()
	p := &player{
		sess:   sess,
		theme:  newTheme(out),
		score:  &scoreboard{},
		out:    out,
		quiet:  jsonOutput,
		hints:  settings.Hints,
		rounds: playRounds,
	}
	sess.Subscribe(p.score)
	if settings.Bell && !jsonOutput {
		sess.Subscribe(bell(out))
	}
	logger.Info("session started", "session", sess.ID(), "operation", string(op), "seed", seed)

	if err := p.run(cmd.InOrStdin()); err != nil {
		return err
	}
	return p.summary(seed)
}

// run reads input until quit, the round limit or end of input.
func (p *player) run(in io.Reader) error {
	p.draw()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		for _, key := range []byte(strings.TrimSpace(scanner.Text())) {
			if key == ' ' || key == '\t' {
				continue
			}
			quit, err := p.press(key)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
		p.draw()
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// press handles one key and reports whether the loop should stop.
func (p *player) press(key byte) (bool, error) {
	switch key {
	case keyReveal:
		p.sess.Reveal()
	case keyRestart:
		p.sess.Restart()
	case keyNew:
		if err := p.sess.NewProblem(); err != nil {
			return false, err
		}
	case keyHint:
		p.hints = !p.hints
	case keyQuit:
		return true, nil
	default:
		if p.sess.SubmitCurrent(key) == engine.OutcomeRejected && !p.quiet {
			PrintError(p.out, fmt.Sprintf("%q does not belong here, try again", key))
		}
	}

	if !p.sess.Done() {
		return false, nil
	}
	return p.complete()
}

// complete shows the finished round and moves on to the next problem.
func (p *player) complete() (bool, error) {
	snap := p.sess.Snapshot()
	p.played++

	if !p.quiet {
		fmt.Fprintln(p.out, p.theme.Layout(snap))
		line := render.ResultLine(snap.Plan)
		if snap.Stats.Revealed {
			PrintWarning(p.out, "Revealed: "+line)
		} else {
			PrintSuccess(p.out, line)
			PrintLabelValue(p.out, "Accuracy", fmt.Sprintf("%.0f%%", snap.Stats.Accuracy()*100))
		}
		PrintLabelValue(p.out, "Time", snap.Stats.Elapsed.Round(time.Second).String())
	}

	if p.rounds > 0 && p.played >= p.rounds {
		return true, nil
	}
	return false, p.sess.NewProblem()
}

func (p *player) draw() {
	if p.quiet {
		return
	}
	snap := p.sess.Snapshot()
	fmt.Fprintln(p.out, p.theme.Layout(snap))
	if p.hints {
		if hint := p.theme.HintLine(snap); hint != "" {
			fmt.Fprintln(p.out, hint)
		}
	}
	_, _ = dimColor.Fprintln(p.out, "digit: fill  ?: reveal  r: restart  n: new  h: hints  q: quit")
}

func (p *player) summary(seed int64) error {
	totals := p.sess.Snapshot().Totals
	_, best := p.score.Streak()

	if p.quiet {
		return outputJSON(p.out, playSummary{
			SessionID:  p.sess.ID(),
			Seed:       seed,
			Totals:     totals,
			BestStreak: best,
		})
	}

	PrintSection(p.out, "Summary")
	PrintTable(p.out,
		[]string{"ROUNDS", "SOLVED", "REVEALED", "CORRECT", "WRONG", "BEST STREAK"},
		[][]string{{
			strconv.Itoa(totals.Rounds),
			strconv.Itoa(totals.Solved),
			strconv.Itoa(totals.Revealed),
			strconv.Itoa(totals.Correct),
			strconv.Itoa(totals.Wrong),
			strconv.Itoa(best),
		}},
	)
	fmt.Fprintln(p.out)
	PrintLabelValue(p.out, "Seed", strconv.FormatInt(seed, 10))
	return nil
}
