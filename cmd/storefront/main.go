package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/greenbasket/storefront/config"
	catalogrepo "github.com/greenbasket/storefront/internal/catalog/repository"
	catalogservice "github.com/greenbasket/storefront/internal/catalog/service"
	h "github.com/greenbasket/storefront/internal/http"
	"github.com/greenbasket/storefront/internal/order"
	"github.com/greenbasket/storefront/internal/recommend"
	"github.com/greenbasket/storefront/internal/session"
	"github.com/greenbasket/storefront/pkg/logger"
)

// orderStageInterval is the cadence of the faked delivery progression shown
// on the confirmation page.
const orderStageInterval = 3 * time.Second

func main() {
	cfg := config.LoadConfig()
	log := logger.New(cfg.LogLevel)
	log.Info("Starting GreenBasket storefront...")

	// Catalog: migrate + seed the product table, then load it once into the
	// in-memory index. The database is never read again after startup.
	repo, err := catalogrepo.NewRepository(cfg.CatalogDBPath)
	if err != nil {
		log.Fatalf("Failed to open catalog database: %v", err)
	}
	if err := repo.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run catalog migrations: %v", err)
	}

	products, err := repo.GetAllProducts(context.Background())
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	if err := repo.Close(); err != nil {
		log.Warnf("Failed to close catalog database: %v", err)
	}

	catalog := catalogservice.NewCatalog(products)
	log.Infof("Catalog loaded with %d products", len(products))

	advisor := recommend.NewHTTPAdvisorClient(cfg.AdvisorURL, cfg.AdvisorTimeout, log)
	log.Infof("Recommendation advisor client initialized for target: %s", cfg.AdvisorURL)

	registry := session.NewRegistry(cfg.SessionTTL, advisor, catalog, log)
	defer registry.Close()

	tracker := order.NewTracker(orderStageInterval, nil)

	router := h.NewRouter(h.RouterDeps{
		Catalog:        catalog,
		Registry:       registry,
		Tracker:        tracker,
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("Storefront listening on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Info("server exited")
}
