package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/whitecaroot/careers-builder/internal/config"
	"github.com/whitecaroot/careers-builder/internal/stubapi"
)

func main() {
	// 1. Load Environment Variables (.env is optional)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}
	cfg := config.Load()

	// 2. Structured Logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// 3. Database Connection
	db := stubapi.Connect(cfg.DatabaseDSN)

	// 4. Upload Directory
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}

	// 5. Setup Router
	server := stubapi.New(db, cfg.UploadDir, logger)
	r := server.Router()

	logger.Infof("Careers API starting on port %s", cfg.StubPort)
	if err := r.Run(":" + cfg.StubPort); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
