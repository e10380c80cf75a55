package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gonga3/study-planner/internal/engine"
	"github.com/Gonga3/study-planner/internal/ui"
)

// nameAction builds the "<verb> <name>" commands shared by habits and vices.
func nameAction(use, short string, run func(ctx context.Context, svc *engine.Service, name string) (bool, error), done, missed string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name>",
		Short: short,
		Args:  exactArgs(1, "name is required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			ok, err := run(ctx, svc, args[0])
			if err := reportSave(cmd, err); err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf(missed, args[0])))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf(done, args[0])))
			return nil
		},
	}
}

func newHabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Track positive habits",
	}
	cmd.AddCommand(
		nameAction("add", "Add a positive habit (replaces one with the same name)",
			func(ctx context.Context, svc *engine.Service, name string) (bool, error) {
				stored, err := svc.AddHabit(ctx, name)
				return stored != "", err
			}, ui.IconHabit+" Added habit %q", "habit name must not be blank (%q)"),
		nameAction("mark", "Tick a habit for today",
			func(ctx context.Context, svc *engine.Service, name string) (bool, error) {
				return svc.MarkHabitToday(ctx, name)
			}, ui.IconFire+" Marked %q for today", "%q was already marked today or does not exist"),
		nameAction("rm", "Delete a positive habit",
			func(ctx context.Context, svc *engine.Service, name string) (bool, error) {
				return svc.DeleteHabit(ctx, name)
			}, "Deleted habit %q", "no habit %q"),
		newHabitListCmd(),
	)
	return cmd
}

func newHabitListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List positive habits with their streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.State()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconHabit, "Habits"))
			if len(st.PositiveHabits) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("no habits"))
			}
			for _, name := range st.HabitNames() {
				h := st.PositiveHabits[name]
				fmt.Fprintf(out, "- %s %s\n", name, ui.Gold.Render(fmt.Sprintf("%s %d days", ui.IconFire, h.Streak)))
			}
			return nil
		},
	}
}

func newViceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vice",
		Aliases: []string{"quit"},
		Short:   "Track negative habits you are quitting",
	}
	cmd.AddCommand(
		nameAction("add", "Add a negative habit (replaces one with the same name)",
			func(ctx context.Context, svc *engine.Service, name string) (bool, error) {
				stored, err := svc.AddVice(ctx, name)
				return stored != "", err
			}, "Added %q", "name must not be blank (%q)"),
		nameAction("reset", "Start over from today",
			func(ctx context.Context, svc *engine.Service, name string) (bool, error) {
				return svc.StartOverVice(ctx, name)
			}, ui.IconBroom+" Started over on %q", "no negative habit %q"),
		nameAction("rm", "Delete a negative habit",
			func(ctx context.Context, svc *engine.Service, name string) (bool, error) {
				return svc.DeleteVice(ctx, name)
			}, "Deleted %q", "no negative habit %q"),
		newViceListCmd(),
	)
	return cmd
}

func newViceListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List negative habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.State()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBroom, "Quitting"))
			if len(st.NegativeHabits) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("nothing tracked"))
			}
			for _, name := range st.ViceNames() {
				h := st.NegativeHabits[name]
				fmt.Fprintf(out, "- %s %s %s\n", name, ui.Good.Render(fmt.Sprintf("%d days clean", h.DaysSober)), ui.Muted.Render(ui.ViceSince(h)))
			}
			return nil
		},
	}
}
