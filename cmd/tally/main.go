package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/tally-finance/tally/internal/commands"
)

func main() {
	// A .env file is optional; it can set TALLY_HOME.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
