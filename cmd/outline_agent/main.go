// Package main provides the entry point for the outline extraction CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "outline_agent",
	Short: "Document outline extraction and collection analysis",
	Long:  "outline_agent derives structural outlines (title plus H1/H2/H3 headings) from positioned text runs and ranks sections across document collections against a persona and job to be done.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
