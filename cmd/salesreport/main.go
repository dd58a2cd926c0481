package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/kdnorth/salesreport/internal/commands"
)

func main() {
	// SALESREPORT_* overrides may live in a local .env file.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
