package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"demobank/internal/config"
	"demobank/internal/handlers"
	"demobank/internal/middleware"
	"demobank/internal/services"
)

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	metrics := services.NewPrometheusMetrics()
	ledger, err := services.NewLedgerService(services.SeedAccounts(cfg.Seed.ExtraAccounts), metrics, logger)
	if err != nil {
		logger.Error("failed to seed ledger", "error", err)
		os.Exit(1)
	}
	tokenService := services.NewTokenService(&cfg.JWT)

	e := buildServer(cfg, ledger, tokenService)

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.Address(),
			"environment", cfg.Server.Environment,
			"seed_accounts", ledger.AccountCount(),
		)
		if err := e.Start(cfg.Server.Address()); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	logger.Info("shutting down")
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

// buildServer assembles the Echo instance, middleware chain and routes
func buildServer(cfg *config.Config, ledger services.LedgerServiceInterface, tokenService services.TokenServiceInterface) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
	}))

	authHandler := handlers.NewAuthHandler(ledger, tokenService)
	accountHandler := handlers.NewAccountHandler(ledger)
	transactionHandler := handlers.NewTransactionHandler(ledger)
	healthHandler := handlers.NewHealthCheckHandler(ledger)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register)
	auth.POST("/logout", authHandler.Logout)

	api.GET("/accounts", accountHandler.ListAccounts)

	account := api.Group("/account", middleware.RequireSession(tokenService, ledger))
	account.GET("", accountHandler.GetAccount)
	account.GET("/transactions", accountHandler.GetTransactions)
	account.POST("/deposit", transactionHandler.Deposit)
	account.POST("/withdraw", transactionHandler.Withdraw)
	account.POST("/transfer", transactionHandler.Transfer)

	return e
}
