package main

import (
	"log"

	"learning_platform_backend/internal/app"
	"learning_platform_backend/internal/config"
	"learning_platform_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
