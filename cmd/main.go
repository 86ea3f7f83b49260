package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"webhooks-api/docs"
	"webhooks-api/internal/api"
	"webhooks-api/internal/auth"
	"webhooks-api/internal/config"
	"webhooks-api/internal/logger"
	"webhooks-api/internal/metrics"
	"webhooks-api/internal/storage"
)

// @title Webhooks API
// @version 1.0
// @description Webhooks resource of the application backend
// @host localhost:8080
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	issueFor := flag.String("issue-token", "", "print a bearer token for this user id and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load Configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Setup JWT Secret
	auth.SetSecret(cfg.Auth.JWTSecret)

	// stdout carries only the token so it can be captured by scripts
	if *issueFor != "" {
		if err := issueToken(os.Stdout, *issueFor, cfg.Auth.TokenTTL); err != nil {
			log.Fatalf("Failed to issue token: %v", err)
		}
		return
	}

	zapLogger := logger.NewLogger(cfg.Log.Level)
	defer zapLogger.Sync()
	zapLogger.Info("Configuration loaded", zap.String("path", *configPath))

	// Init PostgreSQL
	db, err := storage.NewStorage(cfg.Database.URL, storage.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		zapLogger.Fatal("Failed to init DB", zap.Error(err))
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		zapLogger.Fatal("Failed to migrate DB", zap.Error(err))
	}
	zapLogger.Info("PostgreSQL connected")

	docs.SwaggerInfo.BasePath = cfg.Server.APIPrefix
	if docs.SwaggerInfo.BasePath == "" {
		docs.SwaggerInfo.BasePath = "/"
	}

	// Init API
	apiHandler := api.NewAPI(db, cfg, zapLogger, metrics.New(prometheus.DefaultRegisterer))
	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: apiHandler.Router(),
	}

	// Graceful Shutdown Setup
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zapLogger.Info("Starting API server", zap.String("addr", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server error", zap.Error(err))
		}
	}()

	<-ctx.Done() // Wait for interrupt signal
	zapLogger.Info("Shutdown initiated...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("HTTP shutdown error", zap.Error(err))
	}

	zapLogger.Info("Graceful shutdown complete")
}
