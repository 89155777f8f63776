package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/config"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/client/rest"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/delivery/http/web"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/session"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/usecase"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/logger"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/redis"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting admin dashboard", "port", cfg.Port, "api", cfg.APIBaseURL)

	// 3. Setup Redis (login rate limiter falls back to in-memory when absent)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}

	// 4. Setup Session Store
	store, err := session.OpenSQLite(cfg.SessionDBPath)
	if err != nil {
		logger.Log.Error("Failed to open session store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// 5. Setup Upstream Clients
	api := rest.NewClient(cfg.APIBaseURL)
	serviceClient := rest.NewServiceClient(api)
	careerClient := rest.NewCareerClient(api)
	applicationClient := rest.NewApplicationClient(api)
	userClient := rest.NewUserClient(api)
	authClient := rest.NewAuthClient(api)
	statsClient := rest.NewStatsClient(api)

	// 6. Setup UseCases
	validate := validator.New()
	serviceUC := usecase.NewServiceUsecase(serviceClient)
	careerUC := usecase.NewCareerUsecase(careerClient)
	applicationUC := usecase.NewApplicationUsecase(applicationClient)
	userUC := usecase.NewUserUsecase(userClient, validate)
	authUC := usecase.NewAuthUsecase(authClient, store)
	statsUC := usecase.NewStatsUsecase(statsClient)

	// 7. Setup Router
	router := web.NewRouter(web.RouterDeps{
		Config:        cfg,
		SessionStore:  store,
		AuthUC:        authUC,
		StatsUC:       statsUC,
		ServiceUC:     serviceUC,
		CareerUC:      careerUC,
		ApplicationUC: applicationUC,
		UserUC:        userUC,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	redis.Close()
	logger.Log.Info("Server exiting")
}
