// Package types provides type definitions for structured data used throughout the career-planner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillLevel represents an ordinal proficiency level
type SkillLevel string

// Skill proficiency levels, totally ordered beginner < intermediate < advanced < expert
const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
	LevelExpert       SkillLevel = "expert"
)

// Ordinal returns the numeric rank of a level (beginner=1 .. expert=4).
// Unknown or empty levels return 0.
func (l SkillLevel) Ordinal() int {
	switch l {
	case LevelBeginner:
		return 1
	case LevelIntermediate:
		return 2
	case LevelAdvanced:
		return 3
	case LevelExpert:
		return 4
	default:
		return 0
	}
}

// IsValid reports whether the level is one of the four known tiers
func (l SkillLevel) IsValid() bool {
	return l.Ordinal() > 0
}

// Importance represents how strongly a job requires a skill
type Importance string

// Requirement importance tiers
const (
	ImportanceCritical   Importance = "critical"
	ImportanceImportant  Importance = "important"
	ImportanceNiceToHave Importance = "nice-to-have"
)

// Weight returns the scoring weight for an importance tier.
// Unknown tiers weigh the same as nice-to-have.
func (i Importance) Weight() float64 {
	switch i {
	case ImportanceCritical:
		return 3.0
	case ImportanceImportant:
		return 2.0
	default:
		return 1.0
	}
}

// UserSkill represents a single skill from a user's profile or resume.
// Produced by upstream profile/resume ingestion; immutable input to the core.
type UserSkill struct {
	SkillID         string     `json:"skill_id" validate:"required"`
	SkillName       string     `json:"skill_name" validate:"required"`
	SkillCategory   string     `json:"skill_category"`
	Level           SkillLevel `json:"level" validate:"required,oneof=beginner intermediate advanced expert"`
	YearsExperience float64    `json:"years_experience,omitempty" validate:"gte=0"`
	ConfidenceScore float64    `json:"confidence_score,omitempty" validate:"gte=0,lte=1"` // 0 means unset; treated as 1.0
	Certifications  []string   `json:"certifications,omitempty"`
}

// JobSkillRequirement represents a skill requirement extracted from a job posting.
// Produced by upstream job-posting analysis; immutable input to the core.
type JobSkillRequirement struct {
	Skill         string     `json:"skill" validate:"required"`
	Category      string     `json:"category"`
	Importance    Importance `json:"importance" validate:"required,oneof=critical important nice-to-have"`
	MinimumLevel  SkillLevel `json:"minimum_level" validate:"required,oneof=beginner intermediate advanced expert"`
	YearsRequired float64    `json:"years_required,omitempty" validate:"gte=0"`
	Confidence    float64    `json:"confidence" validate:"gte=0,lte=1"` // 0 means unset; treated as 1.0
	Context       string     `json:"context,omitempty"`
}
