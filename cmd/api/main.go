package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"agrimart/internal/config"
	"agrimart/internal/httpserver"
	productrepo "agrimart/internal/repository/product"
	"agrimart/internal/seed"
	cartsvc "agrimart/internal/service/cart"
	catalogsvc "agrimart/internal/service/catalog"
	"agrimart/internal/service/orderhistory"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	gin.SetMode(gin.ReleaseMode)

	productRepo := productrepo.NewMemory(logger)
	if cfg.SeedCatalog {
		if err := seed.Apply(context.Background(), productRepo); err != nil {
			logger.Fatalf("seed catalog: %v", err)
		}
		logger.Printf("seeded catalog")
	}

	catalogService := catalogsvc.New(productRepo)
	cartStore := cartsvc.NewStore()
	orderStore := orderhistory.NewStore()

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		CatalogSvc: catalogService,
		CartStore:  cartStore,
		OrderStore: orderStore,
	}, cfg.CORSOrigins, cfg.FileURLHost)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
