package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"oko/coaching-app/internal/advisory"
	"oko/coaching-app/internal/config"
	"oko/coaching-app/internal/persistence"
	"oko/coaching-app/internal/service"
	"oko/coaching-app/internal/storage"
	"oko/coaching-app/internal/store"

	"go.uber.org/zap"
)

func main() {
	zl, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer zl.Sync()
	logger := zl.Sugar()

	logger.Info("starting coaching app core")
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if strings.HasPrefix(pair[0], "SNAPSHOT_") || strings.HasPrefix(pair[0], "S3_") ||
			strings.HasPrefix(pair[0], "DATABASE_") || strings.HasPrefix(pair[0], "SCHEDULER_") {
			logger.Infof("ENV: %s = %s", pair[0], pair[1])
		}
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Fatalf("could not load config: %v", err)
	}
	logger.Info("configuration loaded")

	// --- Snapshot backend ---
	var snapshots persistence.SnapshotStore
	switch cfg.Snapshot.Backend {
	case "mongo":
		dbClient, err := persistence.ConnectDB(cfg.Database.URI)
		if err != nil {
			logger.Fatalf("could not connect to MongoDB: %v", err)
		}
		defer func() {
			if err := persistence.DisconnectDB(dbClient); err != nil {
				logger.Errorf("failed to disconnect MongoDB: %v", err)
			}
		}()
		snapshots = persistence.NewMongoStore(dbClient.Database(cfg.Database.Name))
		logger.Infow("snapshot backend ready", "backend", "mongo", "database", cfg.Database.Name)
	default:
		snapshots = persistence.NewFileStore(cfg.Snapshot.Path)
		logger.Infow("snapshot backend ready", "backend", "file", "path", cfg.Snapshot.Path)
	}

	// --- State: load snapshot or seed defaults ---
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 10*time.Second)
	state, err := snapshots.Load(loadCtx)
	loadCancel()
	var appStore *store.Store
	switch {
	case err == nil:
		appStore = store.New(state)
		logger.Info("state restored from snapshot")
	case errors.Is(err, persistence.ErrNoSnapshot):
		appStore = store.NewSeeded()
		logger.Info("no snapshot found, seeded default state")
	default:
		logger.Fatalf("could not load snapshot: %v", err)
	}

	// --- Media storage ---
	media, err := storage.NewS3Storage(cfg.S3, logger)
	if err != nil {
		logger.Fatalf("failed to initialize S3 storage: %v", err)
	}

	// --- Advisory client ---
	advisoryClient := advisory.NewGeminiClient(advisory.GeminiConfig{
		BaseURL:    cfg.Advisory.BaseURL,
		APIKey:     cfg.Advisory.APIKey,
		TextModel:  cfg.Advisory.TextModel,
		ImageModel: cfg.Advisory.ImageModel,
		VideoModel: cfg.Advisory.VideoModel,
		Timeout:    cfg.Advisory.Timeout,
	}, logger)

	// --- Services ---
	// The full service set is the surface a UI or transport layer binds to.
	app := struct {
		Profiles   service.ProfileService
		Sessions   service.SessionService
		Schedule   service.ScheduleService
		Messages   service.MessageService
		Nutrition  service.NutritionService
		Attendance service.AttendanceService
		Programs   service.ProgramService
		Gyms       service.GymService
		Advisory   service.AdvisoryService
		Alerts     service.AlertService
	}{
		Profiles:   service.NewProfileService(appStore, logger),
		Sessions:   service.NewSessionService(appStore, logger),
		Schedule:   service.NewScheduleService(appStore, logger),
		Messages:   service.NewMessageService(appStore, logger),
		Nutrition:  service.NewNutritionService(appStore, logger),
		Attendance: service.NewAttendanceService(appStore, logger),
		Programs:   service.NewProgramService(appStore, logger),
		Gyms:       service.NewGymService(appStore, logger),
		Advisory:   service.NewAdvisoryService(appStore, advisoryClient, media, logger),
		Alerts:     service.NewAlertService(appStore, cfg.Scheduler.Interval, logger),
	}
	alertService := app.Alerts

	// Fresh seeds start signed in as the demo trainer so the schedule checks
	// have a profile to work with.
	var hasProfile bool
	appStore.View(func(s *store.State) { hasProfile = s.Profile != nil })
	if !hasProfile {
		if err := app.Profiles.SignIn(context.Background(), store.SeedTrainerProfile()); err != nil {
			logger.Fatalf("failed to install seed profile: %v", err)
		}
	}

	// --- Periodic checks ---
	runCtx, stopScheduler := context.WithCancel(context.Background())
	go alertService.Run(runCtx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")
	stopScheduler()

	saveCtx, saveCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer saveCancel()
	appStore.View(func(s *store.State) {
		if err := snapshots.Save(saveCtx, s); err != nil {
			logger.Errorf("failed to save final snapshot: %v", err)
		}
	})
	logger.Info("state snapshot saved, exiting")
}
