// Package types provides type definitions for structured data used throughout the career-planner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// SkillDependency describes the prerequisite relationships of one gap skill.
// Built per analysis run and scoped to the skills present in the current gap
// set; prerequisites and dependents outside that set are pruned.
type SkillDependency struct {
	SkillName      string     `json:"skill_name"`
	Category       string     `json:"category"`
	Prerequisites  []string   `json:"prerequisites"`
	Dependents     []string   `json:"dependents"`
	Difficulty     Difficulty `json:"difficulty"`
	EstimatedHours float64    `json:"estimated_hours"`
	Confidence     float64    `json:"confidence"`
}

// LearningStep is one unit of a learning path, derived from a single gap
type LearningStep struct {
	SkillName          string     `json:"skill_name"`
	Category           string     `json:"category"`
	CurrentLevel       SkillLevel `json:"current_level,omitempty"`
	TargetLevel        SkillLevel `json:"target_level"`
	Priority           float64    `json:"priority"`
	EstimatedHours     float64    `json:"estimated_hours"`
	Prerequisites      []string   `json:"prerequisites"`
	LearningObjectives []string   `json:"learning_objectives"`
	Milestones         []string   `json:"milestones"`
	Difficulty         Difficulty `json:"difficulty"`
	Reasoning          string     `json:"reasoning"`
}

// PathMetadata reports bookkeeping for one generated learning path
type PathMetadata struct {
	GeneratedAt      time.Time `json:"generated_at"`
	TotalSkills      int       `json:"total_skills"` // equals the input gap count before any length cap
	PrerequisitesMet int       `json:"prerequisites_met"`
	HoursPerWeek     float64   `json:"hours_per_week"`
	CycleDetected    bool      `json:"cycle_detected"`
	Warnings         []string  `json:"warnings,omitempty"`
}

// LearningPath is a complete, ordered learning plan.
// Created once per generation call; read-only thereafter.
type LearningPath struct {
	PathID                   string           `json:"path_id"`
	Title                    string           `json:"title"`
	Description              string           `json:"description"`
	TotalEstimatedHours      float64          `json:"total_estimated_hours"`
	EstimatedCompletionWeeks int              `json:"estimated_completion_weeks"`
	Difficulty               Difficulty       `json:"difficulty"`
	Steps                    []LearningStep   `json:"steps"`
	ParallelTracks           [][]LearningStep `json:"parallel_tracks"`
	CriticalPath             []string         `json:"critical_path"`
	Metadata                 PathMetadata     `json:"metadata"`
}
