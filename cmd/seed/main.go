package main

import (
	"context"
	"log"
	"os"

	"clees-keys/internal/config"
	"clees-keys/internal/db"
	"clees-keys/internal/es"
	"clees-keys/internal/seed"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}
	logger.Println("seed applied")

	esClient, err := es.Connect(cfg.ESURL)
	if err != nil {
		logger.Fatalf("elasticsearch client: %v", err)
	}
	if err := seed.Index(ctx, pool, esClient); err != nil {
		logger.Printf("search index mirror skipped: %v", err)
		return
	}
	logger.Println("search indices mirrored")
}
