package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gonga3/study-planner/internal/engine"
	"github.com/Gonga3/study-planner/internal/planner"
	"github.com/Gonga3/study-planner/internal/ui"
)

func newClassCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "class",
		Short: "Manage the even/odd week class schedule",
	}
	cmd.AddCommand(newClassAddCmd(), newClassListCmd())
	return cmd
}

func newClassAddCmd() *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "add <day> <name> <start> <end>",
		Short: "Add a class session to the even, odd or both schedules",
		Example: `  sp class add sat "Anatomy" 8:00 10:00 --week both
  sp class add دوشنبه "Biophysics" 10:00 12:00 --week odd`,
		Args: exactArgs(4, "day, name, start and end are required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := planner.ParseWeekday(args[0])
			if err != nil {
				return err
			}
			scope, err := planner.ParseWeekScope(week)
			if err != nil {
				return err
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			ok, err := svc.AddClass(ctx, engine.AddClassInput{Day: day, Name: args[1], Start: args[2], End: args[3], Scope: scope})
			if err := reportSave(cmd, err); err != nil {
				return err
			}
			if !ok {
				warn(cmd, "class not added: name, start and end must not be blank")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n", ui.Good.Render(ui.IconCalendar+" Added"), args[1], ui.Muted.Render(string(day)), ui.Muted.Render("("+string(scope)+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&week, "week", "w", string(planner.ScopeEven), "Week scope (even|odd|both)")
	return cmd
}

func newClassListCmd() *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "list [day]",
		Short: "Show a week's schedule, or one day of it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			w := svc.CurrentWeek()
			if week != "" {
				if w, err = planner.ParseWeek(week); err != nil {
					return err
				}
			}
			days := planner.Weekdays
			if len(args) == 1 {
				day, err := planner.ParseWeekday(args[0])
				if err != nil {
					return err
				}
				days = []planner.Weekday{day}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCalendar, fmt.Sprintf("Schedule (%s week)", w)))
			for _, day := range days {
				fmt.Fprintln(out, ui.H2.Render(string(day)))
				classes := svc.ListDay(w, day)
				if len(classes) == 0 {
					fmt.Fprintln(out, "  "+ui.Muted.Render("no classes"))
					continue
				}
				for _, c := range classes {
					fmt.Fprintln(out, "  - "+ui.SessionLine(c))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&week, "week", "w", "", "Week to show (even|odd), default is the current week")
	return cmd
}
