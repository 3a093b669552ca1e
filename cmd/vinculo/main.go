package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/sofiaherrero/vinculo/internal/cli"
	"github.com/sofiaherrero/vinculo/internal/db"
	"github.com/sofiaherrero/vinculo/internal/repository"
	"github.com/sofiaherrero/vinculo/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.vinculo/vinculo.db
	dbPath := os.Getenv("VINCULO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".vinculo", "vinculo.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	caseRepo := repository.NewSQLiteCaseRepo(database)
	interventionRepo := repository.NewSQLiteInterventionRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	noteRepo := repository.NewSQLiteNoteRepo(database)
	familyRepo := repository.NewSQLiteFamilyRepo(database)
	professionalRepo := repository.NewSQLiteProfessionalRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Cases:         service.NewCaseService(caseRepo, interventionRepo, taskRepo, noteRepo, familyRepo, uow),
		Interventions: service.NewInterventionService(interventionRepo),
		Tasks:         service.NewTaskService(taskRepo),
		Overview:      service.NewOverviewService(caseRepo, interventionRepo, professionalRepo, profileRepo),
		Professionals: professionalRepo,
		Profile:       profileRepo,
	}

	// Detect interactive terminal for the editor and confirmation prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// VINCULO_USER overrides the stored acting professional.
	if user := os.Getenv("VINCULO_USER"); user != "" {
		if err := profileRepo.SetCurrentUserID(context.Background(), user); err != nil {
			return fmt.Errorf("setting current user: %w", err)
		}
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
