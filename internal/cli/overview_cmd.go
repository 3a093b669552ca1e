package cli

import (
	"context"
	"fmt"

	"github.com/sofiaherrero/vinculo/internal/cli/formatter"
	"github.com/sofiaherrero/vinculo/internal/domain"
	"github.com/spf13/cobra"
)

func newAgendaCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show your interventions for today",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := Now()
			ivs, err := app.Overview.Agenda(context.Background(), now)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatAgenda(ivs, now))
			return nil
		},
	}
	return cmd
}

func newAlertsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Show expired actions and incomplete case teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			now := Now()

			expired, err := app.Overview.Expired(ctx, now)
			if err != nil {
				return err
			}
			gaps, err := app.Overview.TeamGaps(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n\n%s\n", formatter.FormatExpired(expired, now), formatter.FormatTeamGaps(gaps))
			return nil
		},
	}
	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	var byCEAS bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Workload breakdown of active cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if byCEAS {
				groups, err := app.Overview.CEASBreakdown(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("%s\n", formatter.FormatBreakdown("Cases by CEAS", groups, nil))
				return nil
			}

			groups, err := app.Overview.StatusBreakdown(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatBreakdown("Cases by stage", groups, func(k string) string {
				return formatter.CaseStatusLabel(domain.CaseStatus(k))
			}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&byCEAS, "ceas", false, "Group by the social worker's CEAS instead of stage")
	return cmd
}
