package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/career-planner/internal/matching"
	"github.com/jonathan/career-planner/internal/observability"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a skill inventory against job requirements",
	Long:  "Matches user skills against job skill requirements using exact, synonym, fuzzy, and transferable matching, and reports an importance-weighted overall match score.",
	RunE:  runMatch,
}

var (
	matchSkillsFile       string
	matchRequirementsFile string
	matchTablesFile       string
	matchOutputFile       string
	matchVerbose          bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchSkillsFile, "skills", "s", "", "Path to user skills JSON file (required)")
	matchCmd.Flags().StringVarP(&matchRequirementsFile, "requirements", "r", "", "Path to job requirements JSON file (required)")
	matchCmd.Flags().StringVar(&matchTablesFile, "tables", "", "Path to reference table overrides JSON file (optional)")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a formatted match report to stderr")

	if err := matchCmd.MarkFlagRequired("skills"); err != nil {
		panic(fmt.Sprintf("failed to mark skills flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("requirements"); err != nil {
		panic(fmt.Sprintf("failed to mark requirements flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	skills, err := loadUserSkills(matchSkillsFile)
	if err != nil {
		return err
	}
	requirements, err := loadRequirements(matchRequirementsFile)
	if err != nil {
		return err
	}
	tables, err := loadTables(matchTablesFile)
	if err != nil {
		return err
	}

	matcher := matching.New(tables, nil)
	result := matcher.Match(context.Background(), skills, requirements)

	if matchVerbose {
		observability.NewPrinter(os.Stderr).PrintMatchingResult(&result)
	}

	return writeResult(matchOutputFile, result)
}
