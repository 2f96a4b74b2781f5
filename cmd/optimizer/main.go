// Command optimizer runs the prompt optimization service, either as an
// HTTP server (serve) or as a one-shot CLI call (optimize).
package main

import (
	"os"

	_ "go.uber.org/automaxprocs"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
