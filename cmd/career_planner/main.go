// Package main implements the career_planner CLI for skill matching, gap
// analysis, and learning path generation.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_planner",
	Short: "Career development planning from skill inventories and job requirements",
	Long:  "Career Planner matches a user's skill inventory against job requirements, identifies and classifies skill gaps, and generates a dependency-ordered learning path to close them.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
