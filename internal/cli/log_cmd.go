package cli

import (
	"context"
	"fmt"

	"github.com/sofiaherrero/vinculo/internal/cli/formatter"
	"github.com/sofiaherrero/vinculo/internal/domain"
	"github.com/sofiaherrero/vinculo/internal/editor"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Manage interventions (visits, calls, meetings)",
	}

	cmd.AddCommand(
		newLogAddCmd(app),
		newLogListCmd(app),
		newLogEditCmd(app),
		newLogStatusCmd(app),
		newLogRemoveCmd(app),
	)

	return cmd
}

func newLogAddCmd(app *App) *cobra.Command {
	var caseRef, title, typeStr, start, end, notes string
	var allDay, registered bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an intervention",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			seed := editor.Seed{Title: title, Notes: notes, IsAllDay: allDay}

			if caseRef != "" {
				caseID, err := resolveCaseID(ctx, app, caseRef)
				if err != nil {
					return err
				}
				seed.CaseID = caseID
			}
			if typeStr != "" {
				seed.Type = domain.InterventionType(typeStr)
			}
			if start != "" {
				t, err := parseInstant(start)
				if err != nil {
					return err
				}
				seed.Start = t
			}
			if end != "" {
				t, err := parseInstant(end)
				if err != nil {
					return err
				}
				seed.End = t
			}
			user, err := currentUserID(ctx, app)
			if err != nil {
				return err
			}
			seed.CreatedBy = user

			e := editor.New(seed, Now())
			if registered {
				// Checking is unconditional; the case invariant is enforced
				// at save time.
				e.SetRegistered(true)
			}
			if title == "" && app.IsInteractive != nil && app.IsInteractive() {
				return runEditor(app, editorSeedFromDraft(e.Draft()))
			}
			if err := e.Save(ctx, app.Interventions, Now().UTC()); err != nil {
				return err
			}
			fmt.Printf("Saved %q (%s)\n", e.Draft().Title, shortID(e.Draft().ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&caseRef, "case", "", "Case (omit for a general intervention)")
	cmd.Flags().StringVar(&title, "title", "", "Title")
	cmd.Flags().StringVar(&typeStr, "type", "", "Intervention type")
	cmd.Flags().StringVar(&start, "start", "", "Start (YYYY-MM-DD HH:MM, local)")
	cmd.Flags().StringVar(&end, "end", "", "End (YYYY-MM-DD HH:MM, local)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().BoolVar(&allDay, "all-day", false, "All-day event")
	cmd.Flags().BoolVar(&registered, "register", false, "Register in the field notebook")

	return cmd
}

func newLogListCmd(app *App) *cobra.Command {
	var caseRef string
	var general, notebook bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List interventions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			switch {
			case general:
				ivs, err := app.Interventions.ListGeneral(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("%s\n", formatter.FormatInterventionList(ivs))
				return nil
			case caseRef != "":
				caseID, err := resolveCaseID(ctx, app, caseRef)
				if err != nil {
					return err
				}
				var (
					ivs []*domain.Intervention
					err2 error
				)
				if notebook {
					ivs, err2 = app.Interventions.Notebook(ctx, caseID)
				} else {
					ivs, err2 = app.Interventions.ListByCase(ctx, caseID)
				}
				if err2 != nil {
					return err2
				}
				fmt.Printf("%s\n", formatter.FormatInterventionList(ivs))
				return nil
			default:
				return fmt.Errorf("pass --case or --general")
			}
		},
	}

	cmd.Flags().StringVar(&caseRef, "case", "", "Case to list")
	cmd.Flags().BoolVar(&general, "general", false, "List general interventions")
	cmd.Flags().BoolVar(&notebook, "notebook", false, "Only field-notebook (registered) entries")

	return cmd
}

func newLogEditCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <intervention-id>",
		Short: "Edit an intervention in the interactive editor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			iv, err := app.Interventions.GetByID(ctx, args[0])
			if err != nil {
				return err
			}
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("'log edit' needs an interactive terminal; use 'log add'/'log status' flags instead")
			}
			return runEditor(app, editorSeedFromDraft(*iv))
		},
	}
	return cmd
}

func newLogStatusCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <intervention-id> <planned|completed|cancelled>",
		Short: "Quick status change",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			to := domain.InterventionStatus(args[1])
			if err := app.Interventions.ChangeStatus(context.Background(), args[0], to, Now().UTC()); err != nil {
				return err
			}
			fmt.Printf("Status set to %s\n", formatter.InterventionStatusLabel(to))
			return nil
		},
	}
	return cmd
}

func newLogRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <intervention-id>",
		Short: "Delete an intervention",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			iv, err := app.Interventions.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			e := editor.New(editorSeedFromDraft(*iv), Now())
			tok := e.ProposeDelete()
			err = requestConfirmation(app, "Delete intervention",
				fmt.Sprintf("%q will be removed from the record. This cannot be undone.", iv.Title),
				yes, func() { e.Confirm(tok) })
			if err != nil {
				return err
			}
			if err := e.Delete(ctx, app.Interventions); err != nil {
				if err.Error() == "delete has not been confirmed" {
					fmt.Println("Kept.")
					return nil
				}
				return err
			}
			fmt.Println("Intervention removed.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

// editorSeedFromDraft rebuilds a Seed from a stored intervention so the
// editor reopens with the exact persisted state.
func editorSeedFromDraft(iv domain.Intervention) editor.Seed {
	return editor.Seed{
		ID:         iv.ID,
		CaseID:     iv.CaseID,
		Title:      iv.Title,
		Type:       iv.Type,
		Start:      iv.Start,
		End:        iv.End,
		IsAllDay:   iv.IsAllDay,
		Notes:      iv.Notes,
		Status:     iv.Status,
		Registered: iv.Registered,
		CreatedBy:  iv.CreatedBy,
	}
}
