package main

import (
	"fmt"
	"os"

	"audio2text/cmd/a2t/cmd"
	"audio2text/internal/config"
)

func main() {
	// Initialize configuration (non-blocking - only warns about problems)
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	cmd.Execute()
}
