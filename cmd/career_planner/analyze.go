package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/career-planner/internal/gaps"
	"github.com/jonathan/career-planner/internal/observability"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze skill gaps between an inventory and job requirements",
	Long:  "Runs skill matching and gap analysis: each unmet requirement becomes a classified gap with severity, difficulty, time to competency, and a learning priority, bucketed into critical gaps, quick wins, and long-term goals.",
	RunE:  runAnalyze,
}

var (
	analyzeSkillsFile       string
	analyzeRequirementsFile string
	analyzeTablesFile       string
	analyzeOutputFile       string
	analyzeVerbose          bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeSkillsFile, "skills", "s", "", "Path to user skills JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeRequirementsFile, "requirements", "r", "", "Path to job requirements JSON file (required)")
	analyzeCmd.Flags().StringVar(&analyzeTablesFile, "tables", "", "Path to reference table overrides JSON file (optional)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted gap report to stderr")

	if err := analyzeCmd.MarkFlagRequired("skills"); err != nil {
		panic(fmt.Sprintf("failed to mark skills flag as required: %v", err))
	}
	if err := analyzeCmd.MarkFlagRequired("requirements"); err != nil {
		panic(fmt.Sprintf("failed to mark requirements flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	skills, err := loadUserSkills(analyzeSkillsFile)
	if err != nil {
		return err
	}
	requirements, err := loadRequirements(analyzeRequirementsFile)
	if err != nil {
		return err
	}
	tables, err := loadTables(analyzeTablesFile)
	if err != nil {
		return err
	}

	analyzer := gaps.New(tables, nil)
	result := analyzer.Analyze(context.Background(), skills, requirements)

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintMatchingResult(&result.MatchingResult)
		printer.PrintGapAnalysis(&result)
	}

	return writeResult(analyzeOutputFile, result)
}
