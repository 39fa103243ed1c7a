// Package types provides type definitions for structured data used throughout the career-planner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchType describes how a user skill was matched to a requirement
type MatchType string

// Match types, ordered strongest to weakest
const (
	MatchExact        MatchType = "exact"
	MatchSynonym      MatchType = "synonym"
	MatchFuzzy        MatchType = "fuzzy"
	MatchTransferable MatchType = "transferable"
)

// SkillMatch pairs a user skill with a job requirement it satisfies.
// Created once per matched pair; never mutated after creation.
type SkillMatch struct {
	UserSkill      UserSkill           `json:"user_skill"`
	JobRequirement JobSkillRequirement `json:"job_requirement"`
	MatchType      MatchType           `json:"match_type"`
	MatchScore     float64             `json:"match_score"`             // 0-1
	LevelGap       int                 `json:"level_gap"`               // required minus current; negative = user exceeds
	ExperienceGap  float64             `json:"experience_gap,omitempty"` // years short of requirement, >= 0
	Confidence     float64             `json:"confidence"`              // 0-1
}

// TransferableSkill represents a candidate bridge from an existing skill to a
// required one, not a consumed match.
type TransferableSkill struct {
	FromSkill            UserSkill `json:"from_skill"`
	ToSkillName          string    `json:"to_skill_name"`
	ToCategory           string    `json:"to_category"`
	TransferabilityScore float64   `json:"transferability_score"` // 0-1
	Reasoning            string    `json:"reasoning"`
}

// SkillMatchingResult aggregates the output of one matching run
type SkillMatchingResult struct {
	Matches               []SkillMatch          `json:"matches"`
	TransferableSkills    []TransferableSkill   `json:"transferable_skills"`
	UnmatchedUserSkills   []UserSkill           `json:"unmatched_user_skills"`
	UnmatchedRequirements []JobSkillRequirement `json:"unmatched_requirements"`
	OverallMatchScore     float64               `json:"overall_match_score"` // importance-weighted, 0-1
}
