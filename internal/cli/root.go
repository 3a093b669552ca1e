package cli

import (
	"time"

	"github.com/sofiaherrero/vinculo/internal/repository"
	"github.com/sofiaherrero/vinculo/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Cases         service.CaseService
	Interventions service.InterventionService
	Tasks         service.TaskService
	Overview      service.OverviewService
	Professionals repository.ProfessionalRepo
	Profile       repository.ProfileRepo

	// IsInteractive reports whether the terminal allows the editor UI and
	// confirmation prompts; non-interactive runs require explicit flags.
	IsInteractive func() bool
}

// Now returns the wall clock; a variable so tests can pin it.
var Now = time.Now

// NewRootCmd creates the top-level "vinculo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "vinculo",
		Short: "Caseload tracker and field notebook for social-work teams",
	}

	root.AddCommand(
		newCaseCmd(app),
		newTaskCmd(app),
		newLogCmd(app),
		newAgendaCmd(app),
		newAlertsCmd(app),
		newStatsCmd(app),
		newWhoamiCmd(app),
	)

	return root
}
