package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"campusguard/internal/infrastructure/config"
	"campusguard/internal/infrastructure/database"
	"campusguard/internal/infrastructure/persistence/migrations"
	"campusguard/internal/infrastructure/storage"
	httpRouter "campusguard/internal/interfaces/http"
	"campusguard/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the CampusGuard HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server",
		"environment", env,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == "production" {
			logger.Warn("auto-migration is enabled in production environment - this is not recommended!")
		}
		if err := migrations.RunAutoMigrations(database.Get()); err != nil {
			logger.Fatal("auto-migration failed", "error", err)
		}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	blobStore, err := storage.NewS3BlobStore(&cfg.Storage)
	if err != nil {
		logger.Fatal("failed to initialize blob store", "error", err)
	}

	router, err := httpRouter.NewRouter(database.Get(), redisClient, blobStore, cfg, logger.NewLogger())
	if err != nil {
		logger.Fatal("failed to build router", "error", err)
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
