package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/Igorek95/Test-work-Dzerbun/internal/cli"
	"github.com/Igorek95/Test-work-Dzerbun/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using system environment variables")
	}

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
