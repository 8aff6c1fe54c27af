package config

import (
	"log"
	"os"

	"go.uber.org/zap"
)

// InitLogger installs the global zap logger. APP_ENV=development switches
// to the console encoder, everything else logs JSON.
func InitLogger() {
	var (
		logger *zap.Logger
		err    error
	)
	if os.Getenv("APP_ENV") == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	zap.ReplaceGlobals(logger)
}
