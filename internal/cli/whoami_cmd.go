package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sofiaherrero/vinculo/internal/cli/formatter"
	"github.com/sofiaherrero/vinculo/internal/domain"
	"github.com/spf13/cobra"
)

func newWhoamiCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the professional the CLI acts as",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := app.Profile.CurrentUserID(ctx)
			if err != nil {
				return fmt.Errorf("no current user set; run 'vinculo whoami set <professional-id>'")
			}
			p, err := app.Professionals.GetByID(ctx, id)
			if err != nil {
				return err
			}
			ceas := p.CEAS
			if ceas == "" {
				ceas = "--"
			}
			fmt.Printf("%s  %s  %s\n",
				formatter.Bold(p.Name),
				formatter.StylePurple.Render(roleLabel(p.Role)),
				formatter.Dim("CEAS "+ceas))
			return nil
		},
	}

	cmd.AddCommand(newWhoamiSetCmd(app), newWhoamiRegisterCmd(app), newWhoamiListCmd(app))
	return cmd
}

func newWhoamiSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <professional-id>",
		Short: "Switch the acting professional",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Professionals.GetByID(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Profile.SetCurrentUserID(ctx, p.ID); err != nil {
				return err
			}
			fmt.Printf("Acting as %s\n", p.Name)
			return nil
		},
	}
}

func newWhoamiRegisterCmd(app *App) *cobra.Command {
	var name, roleStr, ceas string
	var use bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Add a professional to the directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			role := domain.Role(roleStr)
			if !domain.ValidRoles[roleStr] {
				return fmt.Errorf("unknown role %q (want social_worker, edis_technician or coordinator)", roleStr)
			}
			p := &domain.Professional{
				ID:   uuid.New().String(),
				Name: name,
				Role: role,
				CEAS: ceas,
			}
			if err := app.Professionals.Upsert(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Registered %s (%s)\n", p.Name, shortID(p.ID))
			if use {
				return app.Profile.SetCurrentUserID(ctx, p.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&roleStr, "role", string(domain.RoleSocialWorker), "Role (social_worker, edis_technician, coordinator)")
	cmd.Flags().StringVar(&ceas, "ceas", "", "CEAS the professional belongs to")
	cmd.Flags().BoolVar(&use, "use", false, "Also switch the acting professional to the new entry")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newWhoamiListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the professional directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			pros, err := app.Professionals.List(context.Background())
			if err != nil {
				return err
			}
			if len(pros) == 0 {
				fmt.Println("Directory is empty.")
				return nil
			}
			headers := []string{"ID", "NAME", "ROLE", "CEAS"}
			rows := make([][]string, 0, len(pros))
			for _, p := range pros {
				ceas := p.CEAS
				if ceas == "" {
					ceas = "--"
				}
				rows = append(rows, []string{
					formatter.TruncID(p.ID),
					formatter.Bold(p.Name),
					formatter.StylePurple.Render(roleLabel(p.Role)),
					formatter.Dim(ceas),
				})
			}
			fmt.Printf("%s\n", formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func roleLabel(r domain.Role) string {
	switch r {
	case domain.RoleSocialWorker:
		return "Social worker"
	case domain.RoleEdisTechnician:
		return "EDIS technician"
	case domain.RoleCoordinator:
		return "Coordinator"
	default:
		return string(r)
	}
}
