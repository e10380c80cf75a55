package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gonga3/study-planner/internal/ui"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Overview of today",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			week, day, classes := svc.Today()
			fmt.Fprintln(out, ui.Heading(ui.IconPlanner, "Study planner"))
			fmt.Fprintln(out, ui.LabelValue("Today", fmt.Sprintf("%s (%s week)", day, week)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconCalendar+" Classes"))
			if len(classes) == 0 {
				fmt.Fprintln(out, "  "+ui.Muted.Render("no classes"))
			}
			for _, c := range classes {
				fmt.Fprintln(out, "  - "+ui.SessionLine(c))
			}
			fmt.Fprintln(out, "")

			open := 0
			tasks := svc.ListTasks()
			for _, t := range tasks {
				if !t.Completed {
					open++
				}
			}
			fmt.Fprintln(out, ui.H2.Render(ui.IconTask+" Tasks"))
			fmt.Fprintf(out, "  %d open, %d done\n", open, len(tasks)-open)
			for _, t := range tasks {
				if t.Completed {
					break
				}
				fmt.Fprintln(out, "  - "+ui.TaskLine(t))
			}
			fmt.Fprintln(out, "")

			st := svc.State()
			fmt.Fprintln(out, ui.H2.Render(ui.IconHabit+" Habits"))
			for _, name := range st.HabitNames() {
				fmt.Fprintf(out, "  - %s %s\n", name, ui.Gold.Render(fmt.Sprintf("%s %d", ui.IconFire, st.PositiveHabits[name].Streak)))
			}
			for _, name := range st.ViceNames() {
				h := st.NegativeHabits[name]
				fmt.Fprintf(out, "  - %s %s\n", name, ui.Muted.Render(fmt.Sprintf("%d days clean, %s", h.DaysSober, ui.ViceSince(h))))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconTarget+" Challenge"))
			printChallengeSummary(out, svc.ChallengeSummary())

			n, last, ok, err := svc.SaveStats(ctx)
			if err != nil {
				warn(cmd, fmt.Sprintf("save journal unavailable: %v", err))
				return nil
			}
			if ok && last != nil {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d saves, last %s (%d bytes)", n, last.SavedAt.Local().Format("2006-01-02 15:04"), last.Size)))
			}
			return nil
		},
	}
}
