package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gonga3/study-planner/internal/planner"
	"github.com/Gonga3/study-planner/internal/ui"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage the daily task list",
	}
	cmd.AddCommand(newTaskAddCmd(), newTaskDoneCmd(), newTaskRmCmd(), newTaskListCmd())
	return cmd
}

func newTaskAddCmd() *cobra.Command {
	var minutes int
	var priority string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  exactArgs(1, "title is required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			prio, err := planner.ParsePriority(priority)
			if err != nil {
				return err
			}
			if minutes < planner.MinTaskMinutes || minutes > planner.MaxTaskMinutes {
				return fmt.Errorf("minutes must be between %d and %d", planner.MinTaskMinutes, planner.MaxTaskMinutes)
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			task, err := svc.AddTask(ctx, planner.NewTask{Title: args[0], DurationMinutes: minutes, Priority: prio})
			if err := reportSave(cmd, err); err != nil {
				return err
			}
			if task == nil {
				warn(cmd, "task not added: title must not be blank")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconTask+" Added"), ui.TaskLine(*task))
			return nil
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", planner.DefaultTaskMinutes, "Duration in minutes (1-480)")
	cmd.Flags().StringVarP(&priority, "priority", "p", string(planner.PriorityLow), "Priority (low|medium|high)")
	return cmd
}

func newTaskDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as completed",
		Args:  exactArgs(1, "id is required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := intArg(args[0], "id")
			if err != nil {
				return err
			}
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			ok, err := svc.CompleteTask(ctx, id)
			if err := reportSave(cmd, err); err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("nothing to do for #%d", id)))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s Completed #%d", ui.IconDone, id)))
			return nil
		},
	}
}

func newTaskRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    exactArgs(1, "id is required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := intArg(args[0], "id")
			if err != nil {
				return err
			}
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			ok, err := svc.DeleteTask(ctx, id)
			if err := reportSave(cmd, err); err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("no task #%d", id)))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(fmt.Sprintf("Deleted #%d", id)))
			return nil
		},
	}
}

func newTaskListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks, open ones first by priority",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTask, "Tasks"))
			tasks := svc.ListTasks()
			if len(tasks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("no tasks yet"))
				return nil
			}
			for _, t := range tasks {
				fmt.Fprintln(out, "- "+ui.TaskLine(t))
			}
			return nil
		},
	}
}
