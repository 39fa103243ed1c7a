package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/career-planner/internal/analysis"
	"github.com/jonathan/career-planner/internal/config"
	"github.com/jonathan/career-planner/internal/observability"
	"github.com/jonathan/career-planner/internal/pathgen"
	"github.com/spf13/cobra"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full career planning pipeline end-to-end",
	Long: `Orchestrates the entire planning process: skill matching -> gap analysis -> learning path generation.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath          string
	runSkillsFile          string
	runRequirementsFile    string
	runTablesFile          string
	runOutputFile          string
	runHoursPerWeek        float64
	runMaxLength           int
	runDifficultyPref      string
	runQuickWins           bool
	runIncludeTransferable bool
	runVerbose             bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runSkillsFile, "skills", "s", "", "Path to user skills JSON file")
	runCommand.Flags().StringVarP(&runRequirementsFile, "requirements", "r", "", "Path to job requirements JSON file")
	runCommand.Flags().StringVar(&runTablesFile, "tables", "", "Path to reference table overrides JSON file")
	runCommand.Flags().StringVarP(&runOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	runCommand.Flags().Float64Var(&runHoursPerWeek, "hours-per-week", 0, "Weekly study budget")
	runCommand.Flags().IntVar(&runMaxLength, "max-path-length", 0, "Cap on learning path steps (0 = unlimited)")
	runCommand.Flags().StringVar(&runDifficultyPref, "difficulty-preference", "", "Order steps \"easy-first\" or \"hard-first\"")
	runCommand.Flags().BoolVar(&runQuickWins, "prioritize-quick-wins", false, "Surface quick wins early in the path")
	runCommand.Flags().BoolVar(&runIncludeTransferable, "include-transferable", false, "Discount effort using transferable skills")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed progress information")

	// Note: --skills is not marked required; we validate after merging config

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Validate loaded config
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stderr, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("skills") {
		cfg.Skills = runSkillsFile
	}
	if cmd.Flags().Changed("requirements") {
		cfg.Requirements = runRequirementsFile
	}
	if cmd.Flags().Changed("tables") {
		cfg.ReferenceTables = runTablesFile
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = runOutputFile
	}
	if cmd.Flags().Changed("hours-per-week") {
		cfg.HoursPerWeek = runHoursPerWeek
	}
	if cmd.Flags().Changed("max-path-length") {
		cfg.MaxPathLength = runMaxLength
	}
	if cmd.Flags().Changed("difficulty-preference") {
		cfg.DifficultyPreference = runDifficultyPref
	}
	if cmd.Flags().Changed("prioritize-quick-wins") {
		cfg.PrioritizeQuickWins = runQuickWins
	}
	if cmd.Flags().Changed("include-transferable") {
		cfg.IncludeTransferable = runIncludeTransferable
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{})

	// Step 4: Validate required fields
	if cfg.Skills == "" {
		return fmt.Errorf("--skills must be provided (via flag or config)")
	}
	if cfg.Requirements == "" {
		return fmt.Errorf("--requirements must be provided (via flag or config)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Step 5: Load inputs
	skills, err := loadUserSkills(cfg.Skills)
	if err != nil {
		return err
	}
	requirements, err := loadRequirements(cfg.Requirements)
	if err != nil {
		return err
	}
	tables, err := loadTables(cfg.ReferenceTables)
	if err != nil {
		return err
	}

	// Step 6: Run the pipeline
	req := analysis.Request{
		UserSkills:   skills,
		Requirements: requirements,
		PathOptions: &pathgen.Options{
			PrioritizeQuickWins:       cfg.PrioritizeQuickWins,
			DifficultyPreference:      cfg.DifficultyPreference,
			IncludeTransferableSkills: cfg.IncludeTransferable,
			MaxPathLength:             cfg.MaxPathLength,
			HoursPerWeek:              cfg.HoursPerWeek,
		},
	}
	if cfg.Verbose {
		req.OnProgress = func(event analysis.ProgressEvent) {
			_, _ = fmt.Fprintf(os.Stderr, "[%s] %s\n", event.Step, event.Message)
		}
	}

	pipeline := analysis.New(tables, nil)
	result := pipeline.Run(context.Background(), req)

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintMatchingResult(&result.GapAnalysis.MatchingResult)
		printer.PrintGapAnalysis(&result.GapAnalysis)
		printer.PrintLearningPath(&result.LearningPath)
	}

	return writeResult(cfg.Output, result)
}
