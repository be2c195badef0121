package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/hpd-transportes/wash-registry/config"
	"github.com/hpd-transportes/wash-registry/database"
	"github.com/hpd-transportes/wash-registry/middlewares"
	"github.com/hpd-transportes/wash-registry/router"
	"github.com/hpd-transportes/wash-registry/services"
	"github.com/hpd-transportes/wash-registry/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load configuration: %v", err)
	}

	utils.InitLogger(cfg.Log.Level, cfg.Log.Format)

	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := database.Open(ctx, cfg.Database)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.InfoLogger.WithField("driver", cfg.Database.Driver).Info("Database connected")

	auth := services.NewAuthService(cfg.Auth.Password, cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	opts := router.Options{RequireSession: cfg.Auth.RequireSession}
	if cfg.Server.RateLimitRPS > 0 {
		opts.RateLimiter = middlewares.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
	}

	r := router.SetupRouter(router.NewServices(store, auth), opts)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		utils.InfoLogger.Printf("Listening on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Errorf("HTTP server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	utils.InfoLogger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.ErrorLogger.Errorf("HTTP shutdown: %v", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		utils.ErrorLogger.Errorf("Closing database: %v", err)
	}
}
