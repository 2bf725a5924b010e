package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	reminderusecases "chambers/internal/application/reminder/usecases"
	"chambers/internal/infrastructure/config"
	"chambers/internal/infrastructure/database"
	"chambers/internal/infrastructure/push"
	"chambers/internal/infrastructure/repository"
	"chambers/internal/infrastructure/scheduler"
	"chambers/internal/shared/biztime"
	"chambers/internal/shared/logger"
)

func main() {
	// Parse environment from command line or env variable
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	// Load configuration
	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	log.Infow("starting endorsement reminder worker", "environment", env)

	// Firm-local day boundaries depend on this timezone, so it must be
	// resolved before any pass runs.
	if err := biztime.Init(cfg.Reminder.Timezone); err != nil {
		log.Fatalw("failed to initialize business timezone",
			"timezone", cfg.Reminder.Timezone,
			"error", err)
	}

	// Initialize database
	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	ctx := context.Background()

	// Initialize push sender
	sender, err := push.NewFCMSender(ctx, &cfg.Push, log)
	if err != nil {
		log.Fatalw("failed to initialize push sender", "error", err)
	}

	// Initialize repositories
	eventRepo := repository.NewCalendarEventRepository(database.Get(), log)
	endorsementRepo := repository.NewEndorsementRepository(database.Get(), log)
	staffRepo := repository.NewStaffRepository(database.Get(), log)

	// Wire the reminder pipeline
	dispatcher := reminderusecases.NewDispatcher(staffRepo, sender, log)
	processor := reminderusecases.NewProcessEndorsementRemindersUseCase(
		eventRepo,
		endorsementRepo,
		dispatcher,
		biztime.Location(),
		cfg.Reminder.Concurrency,
		log,
	)

	// Initialize scheduler
	schedulerManager, err := scheduler.NewSchedulerManager(biztime.Location(), log)
	if err != nil {
		log.Fatalw("failed to create scheduler", "error", err)
	}

	timeout := time.Duration(cfg.Reminder.TimeoutMinutes) * time.Minute
	if err := schedulerManager.RegisterEndorsementReminderJob(cfg.Reminder.CronExpr, processor, timeout); err != nil {
		log.Fatalw("failed to register reminder job", "error", err)
	}

	schedulerManager.Start()
	log.Infow("endorsement reminder worker started",
		"cron", cfg.Reminder.CronExpr,
		"timezone", cfg.Reminder.Timezone)

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	log.Infow("received signal, shutting down", "signal", sig)

	if err := schedulerManager.Stop(); err != nil {
		log.Errorw("failed to stop scheduler cleanly", "error", err)
	}

	log.Infow("endorsement reminder worker stopped")
}
