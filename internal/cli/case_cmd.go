package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/sofiaherrero/vinculo/internal/cli/formatter"
	"github.com/sofiaherrero/vinculo/internal/domain"
	"github.com/spf13/cobra"
)

func newCaseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "case",
		Short: "Manage case files",
	}

	cmd.AddCommand(
		newCaseAddCmd(app),
		newCaseListCmd(app),
		newCaseInspectCmd(app),
		newCaseStatusCmd(app),
		newCaseAssignCmd(app),
		newCaseUnassignCmd(app),
		newCaseNoteCmd(app),
		newCaseFamilyCmd(app),
		newCaseRemoveCmd(app),
	)

	return cmd
}

func newCaseAddCmd(app *App) *cobra.Command {
	var name, nickname, address string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Open a new case file",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.Case{
				Name:     name,
				Nickname: nickname,
				Address:  address,
				Status:   domain.CasePendingReferral,
			}
			if err := app.Cases.Create(context.Background(), c); err != nil {
				return err
			}
			fmt.Printf("Opened case %s (%s)\n", c.DisplayName(), shortID(c.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Case name")
	cmd.Flags().StringVar(&nickname, "nickname", "", "Short display name")
	cmd.Flags().StringVar(&address, "address", "", "Address")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCaseListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := app.Cases.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(cases) == 0 {
				fmt.Println("No cases found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatCaseList(cases))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include closed cases")
	return cmd
}

func newCaseInspectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <case>",
		Short: "Show a case file with notebook, tasks, family grid and notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveCaseID(ctx, app, args[0])
			if err != nil {
				return err
			}
			viewer, _ := currentUserID(ctx, app)
			c, err := app.Cases.GetAggregate(ctx, id, viewer)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatCaseDetail(c))
			return nil
		},
	}
	return cmd
}

func newCaseStatusCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <case> <status>",
		Short: "Move a case to another workflow stage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveCaseID(ctx, app, args[0])
			if err != nil {
				return err
			}
			status := domain.CaseStatus(args[1])
			if err := app.Cases.SetStatus(ctx, id, status); err != nil {
				return err
			}
			fmt.Printf("Case moved to %s\n", formatter.CaseStatusLabel(status))
			return nil
		},
	}
	return cmd
}

func newCaseAssignCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign <case> <professional-id>",
		Short: "Assign a professional to a case",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveCaseID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if _, err := app.Professionals.GetByID(ctx, args[1]); err != nil {
				return err
			}
			return app.Cases.AssignProfessional(ctx, id, args[1])
		},
	}
	return cmd
}

func newCaseUnassignCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unassign <case> <professional-id>",
		Short: "Remove a professional from a case",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveCaseID(ctx, app, args[0])
			if err != nil {
				return err
			}
			return app.Cases.UnassignProfessional(ctx, id, args[1])
		},
	}
	return cmd
}

func newCaseNoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note <case> <text>",
		Short: "Add a private note to a case",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveCaseID(ctx, app, args[0])
			if err != nil {
				return err
			}
			author, err := currentUserID(ctx, app)
			if err != nil {
				return err
			}
			return app.Cases.AddNote(ctx, id, author, args[1])
		},
	}
	return cmd
}

func newCaseFamilyCmd(app *App) *cobra.Command {
	var name, relationship, birth string

	cmd := &cobra.Command{
		Use:   "family <case>",
		Short: "Add a family grid member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveCaseID(ctx, app, args[0])
			if err != nil {
				return err
			}
			m := &domain.FamilyMember{CaseID: id, Name: name, Relationship: relationship}
			if birth != "" {
				d, err := time.Parse("2006-01-02", birth)
				if err != nil {
					return fmt.Errorf("invalid birth date %q: %w", birth, err)
				}
				m.BirthDate = &d
			}
			return app.Cases.AddFamilyMember(ctx, m)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Member name")
	cmd.Flags().StringVar(&relationship, "relationship", "", "Relationship to the case holder")
	cmd.Flags().StringVar(&birth, "birth", "", "Birth date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCaseRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <case>",
		Short: "Delete a case file and everything in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveCaseID(ctx, app, args[0])
			if err != nil {
				return err
			}
			var deleteErr error
			confirmed := false
			err = requestConfirmation(app, "Delete case",
				"The case file, notebook, tasks and notes will be removed. This cannot be undone.",
				yes, func() {
					confirmed = true
					deleteErr = app.Cases.Delete(ctx, id)
				})
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Kept.")
				return nil
			}
			if deleteErr != nil {
				return deleteErr
			}
			fmt.Println("Case removed.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

// shortID truncates a UUID for display.
func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
