package main

import (
	"context"   // context package is needed for Redis operations
	"errors"    // Server error comparison
	"net/http"  // HTTP server
	"os"        // Signals
	"os/signal" // Graceful shutdown
	"syscall"   // Signal numbers
	"time"      // Shutdown timeout

	"kasir/internal/api"    // Custom package for API handlers
	"kasir/internal/config" // Custom package for configuration
	"kasir/internal/db"     // Database connection
	"kasir/internal/notify" // WhatsApp webhook client
	"kasir/internal/store"  // Database access

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	// Connect to the database
	gdb, err := db.Connect(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	logrus.WithFields(logrus.Fields{"driver": cfg.DBDriver, "host": cfg.DBHost, "max_conns": cfg.DBMaxConns}).Info("Connected to database")

	// Setup Redis client, caching stays off without REDIS_ADDR
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		logrus.WithField("addr", cfg.RedisAddr).Info("Connected to Redis")
	}

	// WhatsApp proxy answers 503 without WA_ENDPOINT
	var notifier api.Notifier
	var waClient *notify.Client
	if cfg.WAEndpoint != "" {
		waClient = notify.NewClient(cfg.WAEndpoint, cfg.WATimeout)
		notifier = waClient
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := api.NewRouter(api.Deps{
		Repo:          store.New(gdb),
		Cache:         redisClient,
		Notifier:      notifier,
		SessionSecret: cfg.SessionSecret,
		SecureCookie:  cfg.IsProd,
	})
	if err != nil {
		logrus.Fatalf("failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logrus.Info("Server running on " + cfg.AppPort) // Log server start
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("server shutdown: %v", err)
	}

	// Close connections
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if waClient != nil {
		_ = waClient.Close()
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logrus.Info("Server stopped")
}
