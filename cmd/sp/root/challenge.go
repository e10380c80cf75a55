package root

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Gonga3/study-planner/internal/planner"
	"github.com/Gonga3/study-planner/internal/ui"
)

func newChallengeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "The 100-day challenge grid",
	}
	cmd.AddCommand(newChallengeToggleCmd(), newChallengeStatusCmd())
	return cmd
}

func newChallengeToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <day>...",
		Short: "Check or uncheck challenge days (1-100)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days := make([]int, 0, len(args))
			for _, a := range args {
				n, err := intArg(a, "day")
				if err != nil {
					return err
				}
				days = append(days, n)
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			for _, n := range days {
				ok, err := svc.ToggleDay(ctx, n)
				if err := reportSave(cmd, err); err != nil {
					return err
				}
				if !ok {
					warn(cmd, fmt.Sprintf("day %d is outside 1..%d", n, planner.ChallengeDays))
					continue
				}
				state := "unchecked"
				if svc.State().Challenge.Done(n) {
					state = "checked"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s day %d %s\n", ui.IconTarget, n, state)
			}
			printChallengeSummary(cmd.OutOrStdout(), svc.ChallengeSummary())
			return nil
		},
	}
}

func newChallengeStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the grid and progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTarget, "100-day challenge"))
			grid := svc.State().Challenge
			for _, row := range grid.Rows() {
				cells := make([]string, len(row))
				for i, n := range row {
					label := fmt.Sprintf("%3d", n)
					if grid.Done(n) {
						cells[i] = ui.CellDone.Render(label)
					} else {
						cells[i] = ui.CellOpen.Render(label)
					}
				}
				fmt.Fprintln(out, strings.Join(cells, " "))
			}
			printChallengeSummary(out, svc.ChallengeSummary())
			return nil
		},
	}
}

func printChallengeSummary(w io.Writer, s planner.ChallengeSummary) {
	fmt.Fprintf(w, "%s %s\n",
		ui.LabelValue("Progress", fmt.Sprintf("%d of %d days (%.1f%%), %d to go", s.Completed, planner.ChallengeDays, s.Percentage, s.Remaining)),
		ui.ProgressBar(s.Completed, planner.ChallengeDays, 20))
}
