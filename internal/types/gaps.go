// Package types provides type definitions for structured data used throughout the career-planner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// GapSeverity classifies how serious a skill gap is
type GapSeverity string

// Gap severity tiers
const (
	SeverityMinor    GapSeverity = "minor"
	SeverityModerate GapSeverity = "moderate"
	SeverityCritical GapSeverity = "critical"
)

// Rank returns the numeric rank of a severity (minor=1 .. critical=3)
func (s GapSeverity) Rank() int {
	switch s {
	case SeverityMinor:
		return 1
	case SeverityModerate:
		return 2
	case SeverityCritical:
		return 3
	default:
		return 0
	}
}

// Difficulty classifies how hard a skill is to learn
type Difficulty string

// Learning difficulty tiers, ordered easy < moderate < hard < very-hard
const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHard     Difficulty = "hard"
	DifficultyVeryHard Difficulty = "very-hard"
)

// Ordinal returns the numeric rank of a difficulty (easy=1 .. very-hard=4)
func (d Difficulty) Ordinal() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyModerate:
		return 2
	case DifficultyHard:
		return 3
	case DifficultyVeryHard:
		return 4
	default:
		return 0
	}
}

// DifficultyFromOrdinal maps a numeric rank back to its tier.
// Values outside 1-4 clamp to the nearest tier.
func DifficultyFromOrdinal(ordinal int) Difficulty {
	switch {
	case ordinal <= 1:
		return DifficultyEasy
	case ordinal == 2:
		return DifficultyModerate
	case ordinal == 3:
		return DifficultyHard
	default:
		return DifficultyVeryHard
	}
}

// SkillGap represents one unmet or under-leveled requirement.
// Derived deterministically from a SkillMatch or an unmatched requirement.
type SkillGap struct {
	SkillName          string      `json:"skill_name"`
	Category           string      `json:"category"`
	CurrentLevel       SkillLevel  `json:"current_level,omitempty"` // empty when the user has no matching skill
	RequiredLevel      SkillLevel  `json:"required_level"`
	Importance         Importance  `json:"importance"`
	GapSeverity        GapSeverity `json:"gap_severity"`
	LevelGap           int         `json:"level_gap"`          // >= 0 after flooring
	TimeToCompetency   float64     `json:"time_to_competency"` // months
	LearningDifficulty Difficulty  `json:"learning_difficulty"`
	Priority           float64     `json:"priority"` // 1-10
	Confidence         float64     `json:"confidence"`
}

// SkillStrength represents a requirement the user already meets or exceeds
type SkillStrength struct {
	SkillName     string     `json:"skill_name"`
	Category      string     `json:"category"`
	CurrentLevel  SkillLevel `json:"current_level"`
	RequiredLevel SkillLevel `json:"required_level"`
	Surplus       int        `json:"surplus"` // levels above the requirement, >= 0
}

// Recommendations holds narrative guidance in three time horizons
type Recommendations struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"short_term"`
	LongTerm  []string `json:"long_term"`
}

// AnalysisMetadata reports bookkeeping for one gap-analysis run
type AnalysisMetadata struct {
	TotalSkillsAnalyzed int           `json:"total_skills_analyzed"` // user skills + requirements
	GapsIdentified      int           `json:"gaps_identified"`
	AnalysisConfidence  float64       `json:"analysis_confidence"` // mean contributing match confidence; 1.0 with no gaps
	ProcessingTime      time.Duration `json:"processing_time_ns"`
	AnalyzedAt          time.Time     `json:"analyzed_at"`
}

// GapAnalysisResult aggregates the output of one gap-analysis run
type GapAnalysisResult struct {
	MatchingResult  SkillMatchingResult `json:"matching_result"`
	Gaps            []SkillGap          `json:"gaps"`
	Strengths       []SkillStrength     `json:"strengths"`
	CriticalGaps    []SkillGap          `json:"critical_gaps"`
	QuickWins       []SkillGap          `json:"quick_wins"`
	LongTermGoals   []SkillGap          `json:"long_term_goals"`
	Recommendations Recommendations     `json:"recommendations"`
	Metadata        AnalysisMetadata    `json:"metadata"`
}
