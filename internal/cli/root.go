package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackkit/stackkit/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "stackkit",
	Short: "StackKit: curated Claude Code project scaffolding",
	Long: `StackKit installs curated agents, skills, commands, and docs into a
project's .claude/ directory and keeps the selection consistent.

Modules declare dependencies on each other; stackkit resolves them
transitively, keeps installation order dependency-first, and warns before a
removal would break installed modules.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	if err := InitDependencies(); err != nil {
		return err
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("stackkit %s\n", version.GetVersion()))

	rootCmd.PersistentFlags().String("root", "", "Project root directory (default: current directory)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Never prompt; use flags and defaults")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if deps == nil {
			return
		}
		deps.ApplyUIFlags(getBoolFlag(cmd, "no-color"), getBoolFlag(cmd, "non-interactive"))
	}
}
