package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/meplus/tasks-api/pkg/app/generation"
	appPlan "github.com/meplus/tasks-api/pkg/app/plan"
	"github.com/meplus/tasks-api/pkg/app/usage"
	"github.com/meplus/tasks-api/pkg/cache"
	"github.com/meplus/tasks-api/pkg/config"
	handlers "github.com/meplus/tasks-api/pkg/handlers/http"
	"github.com/meplus/tasks-api/pkg/infra/database"
	"github.com/meplus/tasks-api/pkg/infra/jwt"
	infraLogger "github.com/meplus/tasks-api/pkg/infra/logger"
	"github.com/meplus/tasks-api/pkg/infra/prometheus"
	"github.com/meplus/tasks-api/pkg/infra/providers/factory"
	"github.com/meplus/tasks-api/pkg/infra/repository"
	"github.com/meplus/tasks-api/pkg/middleware"
	"github.com/meplus/tasks-api/pkg/ratelimit"
	"github.com/meplus/tasks-api/pkg/server"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	if err := config.Load("./config"); err != nil {
		logger.WithError(err).Warn("config file not loaded, relying on environment")
	}
	cfg := config.GetConfig()

	prometheus.Initialize()

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	cacheInstance, err := cache.NewCache(cfg.Redis)
	if err != nil {
		logger.Fatalf("Failed to initialize cache: %v", err)
	}
	defer cacheInstance.Close()

	// repository
	taskRepository := repository.NewTaskRepository(db.DB)
	templateRepository := repository.NewTemplateRepository(db.DB)
	userRepository := repository.NewUserRepository(db.DB)
	planRepository := repository.NewPlanRepository(db.DB)
	superPromptRepository := repository.NewSuperPromptRepository(db.DB)

	// service
	planFinder := appPlan.NewFinder(planRepository, cacheInstance, logger)
	usageChecker := usage.NewChecker(userRepository, planFinder, cacheInstance, logger)
	providerLocator := factory.NewProviderLocator(cfg.Providers)
	generator := generation.NewGenerator(providerLocator, logger)

	jwtManager := jwt.NewJwtManager(cfg.Auth.JWTSecret)
	limiter := ratelimit.NewFixedWindowLimiter(nil)
	defer limiter.Stop()

	middlewareTransport := middleware.Transport{
		AuthMiddleware:      middleware.NewAuthMiddleware(logger, jwtManager),
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(logger, limiter),
		MetricsMiddleware:   middleware.NewMetricsMiddleware(logger),
		CORSMiddleware: middleware.NewCORSGlobalMiddleware(
			[]string{cfg.Server.FrontendURL},
			[]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			true,
			[]string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
			"300",
		),
		RecoveryMiddleware: middleware.NewPanicRecoverMiddleware(logger),
	}

	handlerTransport := handlers.HandlerTransport{
		// Tasks
		CreateTaskHandler:  handlers.NewCreateTaskHandler(logger, taskRepository, usageChecker),
		ListTasksHandler:   handlers.NewListTasksHandler(logger, taskRepository),
		GetTaskHandler:     handlers.NewGetTaskHandler(logger, taskRepository),
		UpdateTaskHandler:  handlers.NewUpdateTaskHandler(logger, taskRepository),
		DeleteTaskHandler:  handlers.NewDeleteTaskHandler(logger, taskRepository),
		ShareTaskHandler:   handlers.NewShareTaskHandler(logger, taskRepository, cfg.Server.FrontendURL),
		UnshareTaskHandler: handlers.NewUnshareTaskHandler(logger, taskRepository),
		ExportTaskHandler:  handlers.NewExportTaskHandler(logger, taskRepository, usageChecker),
		ExportTasksHandler: handlers.NewExportTasksHandler(logger, taskRepository, usageChecker),
		// Templates
		CreateTemplateHandler: handlers.NewCreateTemplateHandler(logger, templateRepository),
		ListTemplatesHandler:  handlers.NewListTemplatesHandler(logger, templateRepository),
		GetTemplateHandler:    handlers.NewGetTemplateHandler(logger, templateRepository),
		UpdateTemplateHandler: handlers.NewUpdateTemplateHandler(logger, templateRepository),
		DeleteTemplateHandler: handlers.NewDeleteTemplateHandler(logger, templateRepository),
		// Account
		GetUsageHandler: handlers.NewGetUsageHandler(logger, usageChecker),
		// AI
		GenerateSuperPromptHandler: handlers.NewGenerateSuperPromptHandler(
			logger, generator, userRepository, superPromptRepository,
		),
		ImprovePromptHandler: handlers.NewImprovePromptHandler(logger, providerLocator),
	}

	srv := server.NewAPIServer(server.APIServerDI{
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		Config:              cfg,
		Logger:              logger,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		fmt.Println("error shutting down server:", err)
		os.Exit(1)
	}
	fmt.Println("server gracefully stopped")
}
