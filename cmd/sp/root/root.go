package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Gonga3/study-planner/internal/ui"
)

const Version = "0.1.0"

type globalFlags struct {
	configPath string
	dataPath   string
	backend    string
}

var flags globalFlags

func newRootCmd() *cobra.Command {
	flags = globalFlags{}

	cmd := &cobra.Command{
		Use:           "sp",
		Short:         "Study planner: weekly classes, daily tasks, habits and a 100-day challenge",
		Long:          "sp tracks an even/odd week class schedule, a prioritized task list, positive and negative habits, and a 100-day challenge grid.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default $STUDYPLANNER_CONFIG or ~/.config/studyplanner/config.toml)")
	cmd.PersistentFlags().StringVar(&flags.dataPath, "data", "", "Data file, overrides storage.path")
	cmd.PersistentFlags().StringVar(&flags.backend, "backend", "", "Storage backend (json|sqlite), overrides storage.backend")

	cmd.AddCommand(
		newClassCmd(),
		newTaskCmd(),
		newHabitCmd(),
		newViceCmd(),
		newChallengeCmd(),
		newStatusCmd(),
		newBoardCmd(),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
