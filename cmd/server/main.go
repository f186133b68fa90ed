package main

import (
	"fmt"
	"os"

	"github.com/setforge/setforge-backend/internal/data/repos"
	"github.com/setforge/setforge-backend/internal/db"
	"github.com/setforge/setforge-backend/internal/handlers"
	"github.com/setforge/setforge-backend/internal/platform/config"
	"github.com/setforge/setforge-backend/internal/platform/logger"
	"github.com/setforge/setforge-backend/internal/platform/openai"
	"github.com/setforge/setforge-backend/internal/server"
	"github.com/setforge/setforge-backend/internal/services"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Server.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	postgres, err := db.NewPostgresService(cfg.Database, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", "error", err)
	}
	defer postgres.Close()
	if err := postgres.AutoMigrateAll(); err != nil {
		log.Fatal("failed to migrate database", "error", err)
	}

	aiClient, err := openai.NewClient(log)
	if err != nil {
		log.Fatal("failed to init openai client", "error", err)
	}

	service, err := services.NewWorkoutGenerationService(services.WorkoutGenerationDeps{
		DB:           postgres.DB,
		ExerciseRepo: repos.NewExerciseRepo(log),
		WorkoutRepo:  repos.NewWorkoutRepo(log),
		AI:           aiClient,
		Log:          log,
	})
	if err != nil {
		log.Fatal("failed to init workout generation service", "error", err)
	}

	router := server.NewRouter(cfg.Server,
		handlers.NewWorkoutHandler(service, log),
		handlers.NewExerciseHandler(service, log),
	)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("server starting", "addr", addr, "mode", cfg.Server.Mode)
	if err := router.Run(addr); err != nil {
		log.Fatal("server exited", "error", err)
	}
}
