// Package main provides the entry point for the CareerLaunch HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careerlaunch",
	Short: "CareerLaunch HTTP API Server",
	Long:  "CareerLaunch is a career preparation backend: resume building with AI-assisted content, job search with match scoring, and scripted mock interviews via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
