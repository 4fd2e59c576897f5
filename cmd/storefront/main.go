package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fjod/go_marketplace/internal/catalog"
	"github.com/fjod/go_marketplace/internal/checkout"
	"github.com/fjod/go_marketplace/internal/config"
	marketplacehttp "github.com/fjod/go_marketplace/internal/http"
	"github.com/fjod/go_marketplace/internal/session"
)

func main() {
	cfg := config.Load()

	// All three data sources are loaded exactly once; the process runs
	// entirely from memory afterwards.
	store, err := catalog.Load(cfg.ProductsFile, cfg.CategoriesFile)
	if err != nil {
		log.Fatalf("failed to load catalogue: %v", err)
	}

	credentials, err := session.LoadCredentials(cfg.CredentialsFile)
	if err != nil {
		log.Fatalf("failed to load credentials: %v", err)
	}

	modes, err := checkout.LoadModes(cfg.ModesFile)
	if err != nil {
		log.Fatalf("failed to load payment modes: %v", err)
	}

	registry := session.NewRegistry(credentials)
	calculator := checkout.NewCalculator(registry, store, modes)

	router := marketplacehttp.NewRouter(registry, store, calculator, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("storefront starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
