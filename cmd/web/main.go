package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/whitecaroot/careers-builder/internal/config"
	"github.com/whitecaroot/careers-builder/internal/handlers"
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

	// 3. Setup Router & Templates
	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")

	// 4. Register Routes
	h := handlers.New(cfg, logger)
	h.Register(r)

	logger.Infof("Web gateway starting on port %s (API at %s)", cfg.Port, cfg.APIBaseURL)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
