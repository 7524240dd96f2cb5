package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/admybrand/dashboard-backend/internal/config"
	"github.com/admybrand/dashboard-backend/internal/configstore"
	"github.com/admybrand/dashboard-backend/internal/handlers/websocket"
	"github.com/admybrand/dashboard-backend/internal/refresh"
	"github.com/admybrand/dashboard-backend/internal/routes"
	"github.com/admybrand/dashboard-backend/pkg/debug"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Initialize debug package first with default settings
	debug.Reinitialize()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		debug.Debug("No .env file in current directory: %v", err)
		if err := godotenv.Load("../.env"); err != nil {
			debug.Info("No .env file found, using environment variables")
		} else {
			debug.Info("Successfully loaded .env file from project root")
		}
	} else {
		debug.Info("Successfully loaded .env file from current directory")
	}

	// Reinitialize debug package with environment variables
	debug.Reinitialize()
	debug.Info("Debug logging initialized with environment settings")

	appConfig := config.NewConfig()
	if err := appConfig.Validate(); err != nil {
		debug.Fatal("Invalid configuration: %v", err)
	}

	// Build the config store
	var fetcher configstore.Fetcher
	if appConfig.ConfigSourceURL != "" {
		fetcher = configstore.NewHTTPFetcher(appConfig.ConfigSourceURL, appConfig.FetchTimeout)
	} else {
		debug.Info("No config source configured, serving built-in data")
	}
	store := configstore.NewDefault(fetcher)

	if err := store.ApplySeedFile(appConfig.SeedFile); err != nil {
		debug.Fatal("Failed to apply seed file: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initial load; failures or a slow source keep the built-in data
	initialCtx, initialCancel := context.WithTimeout(ctx, appConfig.FetchTimeout+time.Second)
	store.Load(initialCtx)
	initialCancel()

	var refresher *refresh.Service
	if appConfig.RefreshEnabled() {
		refresher = refresh.NewService(store, appConfig.RefreshSchedule, appConfig.FetchTimeout)
		if err := refresher.Start(ctx); err != nil {
			debug.Fatal("Failed to start config refresh: %v", err)
		}
		debug.Info("Next config refresh at %s", refresher.Next().Format(time.RFC3339))
	} else {
		debug.Info("Periodic config refresh disabled")
	}

	wsHandler := websocket.NewHandler(store, appConfig.CORSAllowedOrigin)

	router := mux.NewRouter()
	routes.SetupRoutes(router, appConfig, store, wsHandler)

	httpServer := &http.Server{
		Addr:              appConfig.GetAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to wait for server errors
	serverErr := make(chan error, 1)

	go func() {
		debug.Info("Starting HTTP server on %s (API: %s, live config: %s)",
			httpServer.Addr, appConfig.GetAPIEndpoint(), appConfig.GetWSEndpoint())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			debug.Error("HTTP server error: %v", err)
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	debug.Info("Server is ready to handle requests")

	select {
	case err := <-serverErr:
		debug.Error("Server error: %v", err)
		os.Exit(1)
	case sig := <-sigChan:
		debug.Info("Received signal: %v", sig)
		debug.Info("Shutting down server...")

		if refresher != nil {
			refresher.Stop()
		}
		wsHandler.Close()

		// Create a deadline for graceful shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			debug.Error("Error during HTTP server shutdown: %v", err)
		}
		debug.Info("Server shutdown complete")
	}
}
