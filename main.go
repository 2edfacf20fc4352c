package main

import (
	"os"

	"civicreport-be/config"
	"civicreport-be/routes"
	"civicreport-be/storage"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open issue store: %v", err)
	}
	defer store.Close()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	r, err := routes.NewRouter(cfg, store)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	log.WithField("addr", cfg.Addr).Info("Starting server")
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
