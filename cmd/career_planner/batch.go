package main

import (
	"context"
	"fmt"

	"github.com/jonathan/career-planner/internal/analysis"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze one skill inventory against several job postings",
	Long:  "Runs the full pipeline once per requirements file, concurrently, against the same skill inventory. Useful for comparing candidate roles. Output is a JSON array of results in input order.",
	RunE:  runBatch,
}

var (
	batchSkillsFile        string
	batchRequirementsFiles []string
	batchTablesFile        string
	batchOutputFile        string
	batchConcurrency       int
)

func init() {
	batchCmd.Flags().StringVarP(&batchSkillsFile, "skills", "s", "", "Path to user skills JSON file (required)")
	batchCmd.Flags().StringArrayVarP(&batchRequirementsFiles, "requirements", "r", nil, "Path to a job requirements JSON file (repeatable, required)")
	batchCmd.Flags().StringVar(&batchTablesFile, "tables", "", "Path to reference table overrides JSON file (optional)")
	batchCmd.Flags().StringVarP(&batchOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum analyses in flight (0 = unbounded)")

	if err := batchCmd.MarkFlagRequired("skills"); err != nil {
		panic(fmt.Sprintf("failed to mark skills flag as required: %v", err))
	}
	if err := batchCmd.MarkFlagRequired("requirements"); err != nil {
		panic(fmt.Sprintf("failed to mark requirements flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	skills, err := loadUserSkills(batchSkillsFile)
	if err != nil {
		return err
	}
	tables, err := loadTables(batchTablesFile)
	if err != nil {
		return err
	}

	requests := make([]analysis.Request, 0, len(batchRequirementsFiles))
	for _, path := range batchRequirementsFiles {
		requirements, err := loadRequirements(path)
		if err != nil {
			return fmt.Errorf("requirements file %s: %w", path, err)
		}
		requests = append(requests, analysis.Request{
			UserSkills:   skills,
			Requirements: requirements,
		})
	}

	pipeline := analysis.New(tables, nil)
	results, err := pipeline.RunBatch(context.Background(), requests, batchConcurrency)
	if err != nil {
		return fmt.Errorf("batch analysis failed: %w", err)
	}

	return writeResult(batchOutputFile, results)
}
