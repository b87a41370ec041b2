package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/posturelab/coach-backend/internal/app"
	"github.com/posturelab/coach-backend/internal/platform/logger"
)

func main() {
	// .env is optional; real deployments inject the environment directly
	_ = godotenv.Load()

	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}

	a, err := app.New(log)
	if err != nil {
		log.Error("Startup failed", "error", err.Error())
		log.Sync()
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		log.Error("Server failed", "error", err.Error())
	}
}
