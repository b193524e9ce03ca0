package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"ph-news-backend/config"
	"ph-news-backend/controllers"
	"ph-news-backend/routes"
	"ph-news-backend/services"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	gin.SetMode(cfg.GinMode)

	// Create a context that listens for the interrupt signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := services.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Error("mongo connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Warn("mongo disconnect", "error", err)
		}
	}()

	store := services.NewMongoStore(client, cfg.Database, cfg.Collection)
	if err := store.EnsureIndexes(ctx); err != nil {
		logger.Warn("index creation failed", "error", err)
	}
	if cfg.SeedOnStart {
		seedCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
		if err := services.SeedIfEmpty(seedCtx, store, logger); err != nil {
			logger.Warn("seeding failed", "error", err)
		}
		cancel()
	}

	reporter := services.NewReporter(store)
	views := services.NewViewCounter(store, logger)
	handler := controllers.NewHandler(store, reporter, views, client, logger)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(routes.RequestID())
	routes.SetupRoutes(router, handler)

	srv := &http.Server{
		Addr:    cfg.Address(),
		Handler: router,
	}

	// Initializing the server in a goroutine so that
	// it won't block the graceful shutdown handling
	go func() {
		logger.Info("server running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Listen for the interrupt signal
	<-ctx.Done()
	stop()
	logger.Info("shutting down server")

	// The server has 5 seconds to finish the requests it is currently
	// handling; in-flight view increments are drained as well.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
	views.Wait()

	logger.Info("server exiting")
}
