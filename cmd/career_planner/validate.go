package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/career-planner/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON file against a JSON Schema",
	Long:  "Validates an input document (user skills, job requirements, or reference table overrides) against one of the schemas under schemas/, or any schema file given explicitly.",
	RunE:  runValidate,
}

var (
	validateSchemaPath string
	validateJSONPath   string
)

func init() {
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "Path to JSON Schema file (required)")
	validateCmd.Flags().StringVar(&validateJSONPath, "json", "", "Path to JSON file to validate (required)")

	if err := validateCmd.MarkFlagRequired("schema"); err != nil {
		panic(fmt.Sprintf("failed to mark schema flag as required: %v", err))
	}
	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	err := schemas.ValidateJSON(validateSchemaPath, validateJSONPath)
	if err == nil {
		_, _ = fmt.Fprintf(os.Stdout, "Validation passed: %s\n", validateJSONPath)
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		_, _ = fmt.Fprintf(os.Stderr, "Validation failed: %s\n", validateJSONPath)
		for _, fieldErr := range validationErr.Errors {
			_, _ = fmt.Fprintf(os.Stderr, "  %s: %s\n", fieldErr.Field, fieldErr.Message)
		}
		os.Exit(1)
	}

	return err
}
