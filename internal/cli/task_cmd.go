package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/sofiaherrero/vinculo/internal/cli/formatter"
	"github.com/sofiaherrero/vinculo/internal/domain"
	"github.com/sofiaherrero/vinculo/internal/editor"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage case tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskConvertCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var caseRef, assigned string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task to a case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			caseID, err := resolveCaseID(ctx, app, caseRef)
			if err != nil {
				return err
			}
			t := &domain.Task{CaseID: caseID, Text: args[0]}
			if assigned != "" {
				t.AssignedTo = strings.Split(assigned, ",")
			}
			if err := app.Tasks.Add(ctx, t); err != nil {
				return err
			}
			fmt.Printf("Added task %s\n", shortID(t.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&caseRef, "case", "", "Case the task belongs to")
	cmd.Flags().StringVar(&assigned, "assign", "", "Comma-separated professional IDs")
	_ = cmd.MarkFlagRequired("case")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var caseRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a case's tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			caseID, err := resolveCaseID(ctx, app, caseRef)
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.ListByCase(ctx, caseID)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatTaskList(tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&caseRef, "case", "", "Case to list tasks for")
	_ = cmd.MarkFlagRequired("case")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task-id>",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Tasks.Toggle(context.Background(), args[0], Now().UTC())
		},
	}
	return cmd
}

func newTaskConvertCmd(app *App) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "convert <task-id>",
		Short: "Draft a notebook intervention from a task",
		Long: "Proposes a completed, registered intervention pre-filled from the task. " +
			"The task itself is left untouched.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			seed, err := app.Tasks.Convert(ctx, args[0])
			if err != nil {
				return err
			}
			user, err := currentUserID(ctx, app)
			if err != nil {
				return err
			}
			seed.CreatedBy = user

			if !save && app.IsInteractive != nil && app.IsInteractive() {
				return runEditor(app, seed)
			}

			e := editor.New(seed, Now())
			if err := e.Save(ctx, app.Interventions, Now().UTC()); err != nil {
				return err
			}
			fmt.Printf("Registered %q in the notebook\n", e.Draft().Title)
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Save the proposal as-is without opening the editor")
	return cmd
}
