package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/groundwork/internal/cli"
	"github.com/alexanderramin/groundwork/internal/config"
	"github.com/alexanderramin/groundwork/internal/db"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/alexanderramin/groundwork/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	resourceRepo := repository.NewSQLiteResourceRepo(database)
	phaseRepo := repository.NewSQLitePhaseRepo(database)
	milestoneRepo := repository.NewSQLiteMilestoneRepo(database)
	settingsRepo := repository.NewSQLiteViewSettingsRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	// Wire services
	settingsSvc := service.NewSettingsService(settingsRepo, cfg.View)
	provider := service.NewChainCriticalPathProvider(phaseRepo, cfg.DependencyGapDays)

	app := &cli.App{
		Projects:   service.NewProjectService(projectRepo),
		Resources:  service.NewResourceService(resourceRepo),
		Phases:     service.NewPhaseService(phaseRepo, projectRepo),
		Milestones: service.NewMilestoneService(milestoneRepo, projectRepo),
		Settings:   settingsSvc,
		Timeline: service.NewTimelineService(projectRepo, phaseRepo, milestoneRepo, resourceRepo,
			settingsSvc, cfg.DependencyGapDays, observers...),
		Schedule: service.NewScheduleService(uow, provider, observers...),
		Export:   service.NewExportService(projectRepo, phaseRepo, milestoneRepo, resourceRepo, observers...),
		Import:   service.NewImportService(uow, observers...),
	}

	// Prompts and the chart viewer need a terminal on both ends.
	app.IsInteractive = func() bool {
		in := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		out := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		return in && out
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
