package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"usina-leads/internal/auth"
	"usina-leads/internal/config"
	"usina-leads/internal/db"
	httphandler "usina-leads/internal/http"
	"usina-leads/internal/http/middleware"
	"usina-leads/internal/logger"
	"usina-leads/internal/repository"
	"usina-leads/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment, cfg.Log.Level)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	franchiseRepo := repository.NewFranchiseRepository(database)
	serverRepo := repository.NewServerRepository(database, appLogger)
	advertisingRepo := repository.NewAdvertisingRepository(database, appLogger)
	distributionRepo := repository.NewDistributionRepository(database, appLogger)
	roleRepo := repository.NewRoleRepository(database)

	distributionService := service.NewDistributionService(distributionRepo, franchiseRepo, serverRepo)
	franchiseService := service.NewFranchiseService(franchiseRepo)
	serverService := service.NewServerService(serverRepo, advertisingRepo)
	advertisingService := service.NewAdvertisingService(advertisingRepo)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	handler := httphandler.NewHandler(distributionService, franchiseService, serverService, advertisingService, appLogger)
	authMiddleware := middleware.Auth(tokenParser, roleRepo, appLogger)
	router := httphandler.NewRouter(handler, authMiddleware, appLogger, cfg.Environment, cfg.HTTP.AllowOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		appLogger.Info().Str("addr", addr).Msg("starting usina leads api")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
	}
	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}
	appLogger.Info().Msg("server stopped")
}
