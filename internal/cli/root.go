package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput   bool
	seedFlag     int64
	noColorFlag  bool
	logLevelFlag string

	// Colors for help output sections
	groupTitleColor   = color.New(color.FgCyan, color.Bold)
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// rootCmd is the root command for arithtutor.
var rootCmd = &cobra.Command{
	Use:     "arithtutor",
	Version: "dev",
	Short:   "Guided arithmetic tutor",
	Long: `arithtutor walks a learner through long division, two-digit multiplication,
column addition and subtraction, and times tables, one digit at a time.

Every exercise is planned up front: the worked solution and the order in which
each cell is filled in. Digits are checked as they are typed.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// customHelpFunc prints help with colored section titles and commands listed
// by group.
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	desc := cmd.Long
	if desc == "" {
		desc = cmd.Short
	}
	if desc != "" {
		help.WriteString(desc)
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	writeCommands := func(title, groupID string) {
		var lines []string
		for _, c := range cmd.Commands() {
			if c.GroupID == groupID && c.IsAvailableCommand() {
				lines = append(lines, fmt.Sprintf("  %-11s %s\n", c.Name(), c.Short))
			}
		}
		if len(lines) == 0 {
			return
		}
		help.WriteString(groupTitleColor.Sprint(title))
		help.WriteString("\n")
		help.WriteString(strings.Join(lines, ""))
		help.WriteString("\n")
	}
	for _, group := range cmd.Groups() {
		writeCommands(group.Title, group.ID)
	}
	writeCommands("Commands:", "")

	if cmd.Example != "" {
		help.WriteString(sectionTitleColor.Sprint("Examples:"))
		help.WriteString("\n")
		help.WriteString(cmd.Example)
		help.WriteString("\n\n")
	}

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailablePersistentFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages())
		help.WriteString("\n")
	}

	fmt.Fprintf(&help, "Use \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

func init() {
	rootCmd.SetHelpFunc(customHelpFunc)

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "Seed for problem generation (0 draws a random seed)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug|info|warn|error")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "practice",
		Title: "Practice:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "worked-solutions",
		Title: "Worked Solutions:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	// CLI & Tooling commands
	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the arithtutor CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	configCmd.GroupID = "cli-tooling"
	rootCmd.AddCommand(configCmd)

	helpCmd := &cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command",
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Root().Help()
		},
	}
	rootCmd.SetHelpCommand(helpCmd)

	// Practice commands
	playCmd.GroupID = "practice"
	newCmd.GroupID = "practice"
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(newCmd)

	// Worked Solutions commands
	planCmd.GroupID = "worked-solutions"
	solveCmd.GroupID = "worked-solutions"
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(solveCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
