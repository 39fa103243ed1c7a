package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/career-planner/internal/analysis"
	"github.com/jonathan/career-planner/internal/observability"
	"github.com/jonathan/career-planner/internal/pathgen"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a learning path from a skill inventory and job requirements",
	Long:  "Runs gap analysis and generates a dependency-ordered learning path: prerequisite skills come first, preferences reorder within dependency constraints, and independent skills are grouped into parallel tracks.",
	RunE:  runPlan,
}

var (
	planSkillsFile          string
	planRequirementsFile    string
	planTablesFile          string
	planOutputFile          string
	planHoursPerWeek        float64
	planMaxLength           int
	planDifficultyPref      string
	planQuickWins           bool
	planIncludeTransferable bool
	planVerbose             bool
)

func init() {
	planCmd.Flags().StringVarP(&planSkillsFile, "skills", "s", "", "Path to user skills JSON file (required)")
	planCmd.Flags().StringVarP(&planRequirementsFile, "requirements", "r", "", "Path to job requirements JSON file (required)")
	planCmd.Flags().StringVar(&planTablesFile, "tables", "", "Path to reference table overrides JSON file (optional)")
	planCmd.Flags().StringVarP(&planOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	planCmd.Flags().Float64Var(&planHoursPerWeek, "hours-per-week", 0, "Weekly study budget (default 10)")
	planCmd.Flags().IntVar(&planMaxLength, "max-path-length", 0, "Cap on learning path steps (0 = unlimited)")
	planCmd.Flags().StringVar(&planDifficultyPref, "difficulty-preference", "", "Order steps \"easy-first\" or \"hard-first\" within dependency constraints")
	planCmd.Flags().BoolVar(&planQuickWins, "prioritize-quick-wins", false, "Surface quick wins early in the path")
	planCmd.Flags().BoolVar(&planIncludeTransferable, "include-transferable", false, "Discount effort using transferable skills")
	planCmd.Flags().BoolVarP(&planVerbose, "verbose", "v", false, "Print a formatted path report to stderr")

	if err := planCmd.MarkFlagRequired("skills"); err != nil {
		panic(fmt.Sprintf("failed to mark skills flag as required: %v", err))
	}
	if err := planCmd.MarkFlagRequired("requirements"); err != nil {
		panic(fmt.Sprintf("failed to mark requirements flag as required: %v", err))
	}

	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, _ []string) error {
	skills, err := loadUserSkills(planSkillsFile)
	if err != nil {
		return err
	}
	requirements, err := loadRequirements(planRequirementsFile)
	if err != nil {
		return err
	}
	tables, err := loadTables(planTablesFile)
	if err != nil {
		return err
	}

	opts := &pathgen.Options{
		PrioritizeQuickWins:       planQuickWins,
		DifficultyPreference:      planDifficultyPref,
		IncludeTransferableSkills: planIncludeTransferable,
		MaxPathLength:             planMaxLength,
		HoursPerWeek:              planHoursPerWeek,
	}

	pipeline := analysis.New(tables, nil)
	result := pipeline.Run(context.Background(), analysis.Request{
		UserSkills:   skills,
		Requirements: requirements,
		PathOptions:  opts,
	})

	if planVerbose {
		observability.NewPrinter(os.Stderr).PrintLearningPath(&result.LearningPath)
	}

	return writeResult(planOutputFile, result.LearningPath)
}
