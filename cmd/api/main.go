package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/harentsoaR/contact-directory/internal/config"
	"github.com/harentsoaR/contact-directory/internal/database"
	"github.com/harentsoaR/contact-directory/internal/handlers"
	applogger "github.com/harentsoaR/contact-directory/internal/logger"
	"github.com/harentsoaR/contact-directory/internal/router"
	"github.com/harentsoaR/contact-directory/internal/services"
	"github.com/harentsoaR/contact-directory/internal/utils"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (yaml, json or toml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.New(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting contact directory",
		zap.Int("port", cfg.Server.Port),
		zap.String("store", cfg.Store.Driver),
		zap.Bool("protect_contacts", cfg.Auth.ProtectContacts),
	)

	// --- Database Connection ---
	store, err := database.Open(context.Background(), &cfg.Store, logger)
	if err != nil {
		logger.Fatal("failed to open store", zap.Error(err))
	}
	logger.Info("store ready", zap.String("driver", cfg.Store.Driver))

	// --- Initialize Services ---
	tokens, err := utils.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		logger.Fatal("failed to init token issuer", zap.Error(err))
	}
	logger.Info("token issuer ready", zap.Duration("ttl", tokens.TTL()))
	hasher := utils.NewPasswordHasher(cfg.Auth.BcryptCost)
	svc := services.New(store, hasher, tokens, logger)

	// --- Handlers and Router ---
	gin.SetMode(gin.ReleaseMode)
	h := handlers.NewHandler(svc, store)
	engine := router.Setup(cfg, h, tokens, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if err := store.Close(ctx); err != nil {
		logger.Error("store close failed", zap.Error(err))
	}

	logger.Info("server stopped")
}
