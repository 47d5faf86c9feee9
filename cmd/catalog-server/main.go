// Package main boots the catalog API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fairyhunter13/catalog-console/internal/config"
	httpapi "github.com/fairyhunter13/catalog-console/internal/http"
	"github.com/fairyhunter13/catalog-console/internal/obs"
	"github.com/fairyhunter13/catalog-console/internal/store"
)

func main() {
	cfg := config.Load()
	obs.InitLogger(false)
	obs.Logger.Info("server_starting")

	var (
		products store.ProductStore
		orders   store.OrderStore
	)
	if cfg.MongoURI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		cli, err := store.Connect(ctx, cfg.MongoURI)
		cancel()
		if err != nil {
			obs.Logger.Error("mongo_connect_error", "error", err)
			os.Exit(1)
		}
		defer func() { _ = cli.Disconnect(context.Background()) }()
		db := cli.Database(cfg.MongoDB)
		products = store.NewMongoProducts(db)
		orders = store.NewMongoOrders(db)
		obs.Logger.Info("mongo_connected", "db", cfg.MongoDB)
	} else {
		// Volatile store: records are lost on restart.
		obs.Logger.Warn("mongo_uri_unset_using_memory_store")
		products = store.NewMemoryProducts()
		orders = store.NewMemoryOrders()
	}

	app := httpapi.NewApp(products, orders)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(app),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		obs.Logger.Info("http_listen", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			obs.Logger.Error("http_server_error", "error", err)
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	obs.Logger.Info("shutdown_signal", "signal", s.String())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		obs.Logger.Error("http_shutdown_error", "error", err)
	}
	obs.Logger.Info("server_stopped")
}
