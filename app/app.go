// File: app/app.go
package app

import (
	"account-api/config"
	"account-api/db"
	"account-api/handler"
	"account-api/logger"
	"account-api/repository"
	"account-api/router"
	"account-api/service"
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to redis: %v", err)
	}
	defer redisClient.Close()

	// Explicit construction: repository -> service -> handler -> router.
	accountRepo := repository.NewAccountRepository(database)
	accountService := service.NewAccountService(accountRepo, redisClient)
	accountHandler := handler.NewAccountHandler(accountService)

	r := router.NewRouter(accountHandler)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}

// TestApp bundles the wired router with its database handle so integration
// tests can drive the full stack and inspect state directly.
type TestApp struct {
	DB     *sql.DB
	Router http.Handler
}

// NewTestApp wires the application layers on top of externally managed
// database and redis connections.
func NewTestApp(database *sql.DB, redisClient *redis.Client) *TestApp {
	accountRepo := repository.NewAccountRepository(database)
	accountService := service.NewAccountService(accountRepo, redisClient)
	accountHandler := handler.NewAccountHandler(accountService)

	return &TestApp{
		DB:     database,
		Router: router.NewRouter(accountHandler),
	}
}
