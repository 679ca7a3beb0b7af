package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "itda/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"itda/internal/auth"
	"itda/internal/cache"
	"itda/internal/config"
	"itda/internal/handler"
	"itda/internal/logger"
	"itda/internal/metrics"
	"itda/internal/repository"
	"itda/internal/router"
	"itda/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title ITDA Listing API
// @version 1.0
// @description Real-estate listing marketplace: member and broker accounts, broker-owned listings, public search.
// @host localhost:2000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	appLogger := logger.New("itda-api", logger.ParseLevel(cfg.LogLevel))
	slog.SetDefault(appLogger)

	if cfg.UsesFallbackSecret() {
		appLogger.Warn("JWT_SECRET not set, signing tokens with the development secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := repository.Open(ctx, cfg, appLogger)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			appLogger.Error("close store", "error", err)
		}
	}()
	appLogger.Info("store ready", "driver", cfg.StoreDriver)

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(ctx); err != nil {
		appLogger.Warn("redis unavailable, continuing without cache", "addr", cfg.RedisAddr, "error", err)
	}
	defer cacheClient.Close()

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	loginGuard := auth.NewLoginGuard(cacheClient, cfg.LoginMaxAttempts, cfg.LoginLockout)

	appMetrics := metrics.New()

	// Initialize services
	authService := service.NewAuthService(store.Users, jwtService, loginGuard, cfg.BcryptCost)
	userService := service.NewUserService(store.Users, cacheClient)
	listingService := service.NewListingService(
		store.Listings,
		store.Users,
		service.WithVerifiedBrokersOnly(cfg.RequireVerifiedBroker),
		service.WithViewRecorder(appMetrics),
	)

	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.IsDevelopment()

	router.Register(e, router.Deps{
		Logger:         appLogger,
		Verifier:       jwtService,
		Metrics:        appMetrics,
		AuthHandler:    handler.NewAuthHandler(authService, userService),
		ListingHandler: handler.NewListingHandler(listingService),
	})

	appLogger.Info("swagger documentation available", "url", swaggerURL(cfg))

	go func() {
		addr := ":" + cfg.ServerPort
		appLogger.Info("server listening", "addr", addr, "env", cfg.Environment)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("server start", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("server shutdown", "error", err)
	}
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return strings.TrimSuffix(host, "/") + "/swagger/index.html"
}
