package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/amiyamandal-dev/podgrid/internal/api"
	"github.com/amiyamandal-dev/podgrid/internal/api/handlers"
	"github.com/amiyamandal-dev/podgrid/internal/config"
	"github.com/amiyamandal-dev/podgrid/internal/directory"
	"github.com/amiyamandal-dev/podgrid/internal/favorites"
	"github.com/amiyamandal-dev/podgrid/internal/render"
	"github.com/amiyamandal-dev/podgrid/internal/search"
	"github.com/amiyamandal-dev/podgrid/internal/service"
	"github.com/amiyamandal-dev/podgrid/internal/storage/badger"
	"github.com/amiyamandal-dev/podgrid/internal/validator"
	"github.com/amiyamandal-dev/podgrid/internal/web"
	"github.com/amiyamandal-dev/podgrid/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting podcast browser",
		"version", "1.0.0",
		"mode", cfg.Server.Mode,
		"directory", cfg.Directory.BaseURL,
	)

	// Initialize favorites database
	db, err := badger.New(cfg.Storage.Path, cfg.Storage.InMemory)
	if err != nil {
		log.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	log.Info("Database initialized", "path", cfg.Storage.Path, "in_memory", cfg.Storage.InMemory)

	// Initialize search index
	searchIndex, err := search.NewBleveIndex(log)
	if err != nil {
		log.Error("Failed to create search index", "error", err)
		os.Exit(1)
	}
	defer searchIndex.Close()

	// Load favorites
	ctx := context.Background()
	store := favorites.NewStore(badger.NewKV(db), searchIndex, log)
	store.Load(ctx)

	count, _ := searchIndex.Count()
	log.Info("Favorites loaded", "count", store.Len(), "indexed", count)

	loc, err := cfg.UI.Location()
	if err != nil {
		log.Error("Invalid timezone", "timezone", cfg.UI.Timezone, "error", err)
		os.Exit(1)
	}

	// Initialize services
	v := validator.New()
	client := directory.NewClient(cfg.Directory.BaseURL, cfg.Directory.Timeout, log)
	browser := service.NewBrowser(store, client, searchIndex, render.NewRenderer(loc, cfg.UI.DateLayout), v, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, searchIndex, log)
	webHandler := web.NewWebHandler(browser, v, log)

	// Initialize router
	router := api.NewRouter(healthHandler, webHandler, cfg, log)
	engine := router.Setup()

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info("HTTP server starting", "address", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Server stopped gracefully")
}
