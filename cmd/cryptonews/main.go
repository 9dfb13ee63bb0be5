package main

import (
	"os"

	"github.com/freecryptonews/client-go/internal/cmd"
)

// Version information set via ldflags during build
// Example: go build -ldflags="-X main.version=1.0.0"
var version = "dev"

func main() {
	cmd.SetVersion(version)

	if err := cmd.Execute(); err != nil {
		// Commands log their own errors; exit non-zero here.
		os.Exit(1)
	}
}
