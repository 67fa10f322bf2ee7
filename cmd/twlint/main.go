package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/pthm/twlint/internal/cmd"
	"github.com/pthm/twlint/internal/version"
)

func main() {
	// Load .env if present so TWLINT_* settings can live beside the documents
	_ = godotenv.Load()

	err := fang.Execute(context.Background(), cmd.RootCmd, fang.WithVersion(version.Version))
	if err != nil {
		os.Exit(1)
	}
}
