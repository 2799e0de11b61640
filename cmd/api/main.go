package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"clees-keys/internal/config"
	"clees-keys/internal/db"
	"clees-keys/internal/es"
	"clees-keys/internal/httpserver"
	appointmentrepo "clees-keys/internal/repository/appointment"
	billingrepo "clees-keys/internal/repository/billing"
	customerrepo "clees-keys/internal/repository/customer"
	inventoryrepo "clees-keys/internal/repository/inventory"
	orderrepo "clees-keys/internal/repository/order"
	servicelogrepo "clees-keys/internal/repository/servicelog"
	"clees-keys/internal/search"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	var backend search.Backend
	switch cfg.SearchBackend {
	case config.BackendPostgres:
		backend = search.NewPostgres(dbpool, logger)
	case config.BackendElasticsearch:
		esClient, err := es.Connect(cfg.ESURL)
		if err != nil {
			logger.Fatalf("connect to elasticsearch: %v", err)
		}
		backend = search.NewElastic(esClient, logger)
	default:
		logger.Fatalf("unknown SEARCH_BACKEND %q", cfg.SearchBackend)
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		OrderRepo:       orderrepo.NewPostgres(dbpool, logger),
		InventoryRepo:   inventoryrepo.NewPostgres(dbpool, logger),
		ServiceLogRepo:  servicelogrepo.NewPostgres(dbpool, logger),
		AppointmentRepo: appointmentrepo.NewPostgres(dbpool, logger),
		BillingRepo:     billingrepo.NewPostgres(dbpool, logger),
		CustomerRepo:    customerrepo.NewPostgres(dbpool, logger),
		Search:          backend,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s (search backend: %s)", cfg.HTTPAddr, cfg.SearchBackend)
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
