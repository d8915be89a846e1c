// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"qr-code-backend/internal/cache"
	"qr-code-backend/internal/config"
	"qr-code-backend/internal/database"
	"qr-code-backend/internal/handlers"
	"qr-code-backend/internal/routes"
	"qr-code-backend/internal/services"
	"qr-code-backend/internal/signing"
)

func initLogger(env string) *zap.Logger {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	// Customize time format
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	return logger
}

func main() {
	// Initialize logger first
	logger := initLogger(os.Getenv("ENV"))
	defer logger.Sync() // Flush any buffered log entries

	// Replace global logger
	zap.ReplaceGlobals(logger)

	logger.Info("Starting qr-code-backend server")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port),
		zap.String("cache_backend", cfg.Cache.Backend))

	// Select the render cache backend
	var kv cache.KeyValueCache
	switch cfg.Cache.Backend {
	case "mongo":
		db, err := database.NewMongoDB(cfg)
		if err != nil {
			logger.Fatal("Failed to initialize database", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := db.Close(ctx); err != nil {
				logger.Error("Error closing database connection", zap.Error(err))
			}
		}()
		kv = cache.NewMongoCache(db)
	case "memory":
		memory, err := cache.NewMemoryCache(cfg.Cache.MemoryCapacity)
		if err != nil {
			logger.Fatal("Failed to initialize memory cache", zap.Error(err))
		}
		kv = memory
	default:
		// "none": rendered images are rebuilt on every request.
	}

	// URL protection. Operators embedding this server may set a custom
	// Predicate on the policy instead of the static flags.
	policy := &signing.AccessPolicy{
		AllowAnonymous:  cfg.Signing.AllowExternal,
		AllowRegistered: cfg.Signing.AllowExternalForRegistered,
	}
	signer := signing.NewSigner(signing.Config{
		Key:         cfg.Signing.SecretKey,
		Salt:        cfg.Signing.Salt,
		TokenLength: cfg.Signing.TokenLength,
		Policy:      policy,
	})

	// Initialize services
	payloadService := services.NewPayloadService()
	renderService := services.NewRenderService(signer, kv, cfg.Cache.TTLSeconds, logger)

	// Initialize handlers
	h := &routes.Handlers{
		Health:  handlers.NewHealthHandler(),
		QRImage: handlers.NewQRImageHandler(renderService),
		Payload: handlers.NewQRPayloadHandler(payloadService, renderService),
	}

	// Setup routes
	router := routes.SetupRoutes(h, cfg.Auth.JWTSecret)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
