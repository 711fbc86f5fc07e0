package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/recetasproyecto/ms-catalogo/config"
	"github.com/recetasproyecto/ms-catalogo/internal/api"
	"github.com/recetasproyecto/ms-catalogo/internal/database"
	"github.com/recetasproyecto/ms-catalogo/internal/ingest"
	"github.com/recetasproyecto/ms-catalogo/internal/logger"
	"github.com/recetasproyecto/ms-catalogo/internal/router"
	"github.com/recetasproyecto/ms-catalogo/internal/server"
	"github.com/recetasproyecto/ms-catalogo/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := database.Connect(cfg, zl)
	if err != nil {
		zl.Fatal("could not connect to database", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		zl.Fatal("migration failed", zap.Error(err))
	}

	cache := database.NewRedisClient(cfg, zl)

	recipes := service.NewRecipeService(db, cache, zl)
	importer := ingest.NewImporter(db, zl, ingest.Options{Path: cfg.CSVPath})

	recipeHandler := api.NewRecipeHandler(recipes, zl)
	adminHandler := api.NewAdminHandler(importer, recipes, zl)
	healthHandler := api.NewHealthHandler(db)

	srv := server.New(router.Setup(recipeHandler, adminHandler, healthHandler, zl), cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		zl.Info("starting server", zap.String("port", cfg.ServerPort))
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			zl.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		zl.Info("received signal", zap.Stringer("signal", sig))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Fatal("server shutdown error", zap.Error(err))
	}
	zl.Info("server stopped")
}
