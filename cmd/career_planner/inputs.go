package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/career-planner/internal/reference"
	"github.com/jonathan/career-planner/internal/schemas"
	"github.com/jonathan/career-planner/internal/types"
	"github.com/jonathan/career-planner/internal/validation"
)

// loadUserSkills reads and validates a user skills JSON file (a top-level
// array of skill records). Schema validation is best effort: when the schema
// file cannot be located the struct-tag validation still runs.
func loadUserSkills(path string) ([]types.UserSkill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skills file: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/user_skills.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("skills file does not validate against schema: %w", err)
		}
	}

	var skills []types.UserSkill
	if err := json.Unmarshal(data, &skills); err != nil {
		return nil, fmt.Errorf("failed to parse skills JSON: %w", err)
	}

	if err := validation.ValidateUserSkills(skills); err != nil {
		return nil, err
	}

	return skills, nil
}

// loadRequirements reads and validates a job requirements JSON file (a
// top-level array of requirement records).
func loadRequirements(path string) ([]types.JobSkillRequirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read requirements file: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/job_requirements.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("requirements file does not validate against schema: %w", err)
		}
	}

	var requirements []types.JobSkillRequirement
	if err := json.Unmarshal(data, &requirements); err != nil {
		return nil, fmt.Errorf("failed to parse requirements JSON: %w", err)
	}

	if err := validation.ValidateRequirements(requirements); err != nil {
		return nil, err
	}

	return requirements, nil
}

// loadTables returns the compiled-in reference tables, or the defaults merged
// with overrides when a path is given.
func loadTables(path string) (*reference.Tables, error) {
	if path == "" {
		return reference.Default(), nil
	}

	tables, err := reference.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference tables: %w", err)
	}
	return tables, nil
}

// writeResult marshals a result to indented JSON, writing to stdout when no
// output path is given.
func writeResult(path string, result any) error {
	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
		return nil
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
