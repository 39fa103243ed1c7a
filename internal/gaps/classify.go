package gaps

import (
	"math"

	"github.com/jonathan/career-planner/internal/reference"
	"github.com/jonathan/career-planner/internal/types"
)

// Bucket thresholds in months of time-to-competency
const (
	quickWinMaxMonths = 3.0
	longTermMinMonths = 9.0
)

// Priority weighting: importance dominates, ease rewards quick wins, and
// long time-to-competency drags priority down.
const (
	priorityImportanceWeight = 0.5
	priorityEaseWeight       = 0.3
	prioritySpeedWeight      = 0.2
)

// severity classifies a gap. Critical-importance requirements with a gap of
// two or more levels are critical; critical importance alone starts at
// moderate; a gap of three or more levels escalates any severity one tier.
func severity(importance types.Importance, levelGap int) types.GapSeverity {
	sev := types.SeverityMinor
	if importance == types.ImportanceCritical {
		sev = types.SeverityModerate
	}
	if levelGap >= 3 {
		sev = escalate(sev)
	}
	if importance == types.ImportanceCritical && levelGap >= 2 {
		sev = types.SeverityCritical
	}
	return sev
}

func escalate(sev types.GapSeverity) types.GapSeverity {
	switch sev {
	case types.SeverityMinor:
		return types.SeverityModerate
	default:
		return types.SeverityCritical
	}
}

// difficulty starts from the category's base tier, bumped one tier for large
// level gaps and one more for known hard skills, capped at very-hard.
func difficulty(tables *reference.Tables, skillName, category string, levelGap int) types.Difficulty {
	ordinal := tables.BaseDifficulty(category).Ordinal()
	if levelGap >= 3 {
		ordinal++
	}
	if tables.IsHardSkill(skillName) {
		ordinal++
	}
	if ordinal > types.DifficultyVeryHard.Ordinal() {
		ordinal = types.DifficultyVeryHard.Ordinal()
	}
	return types.DifficultyFromOrdinal(ordinal)
}

// timeToCompetency estimates months of study to close a gap: base hours per
// level scaled by category and skill multipliers, converted to months, plus a
// fixed penalty when starting from zero and a penalty proportional to the
// experience shortfall.
func timeToCompetency(tables *reference.Tables, skillName, category string, levelGap int, hasCurrentLevel bool, experienceGap float64) float64 {
	hours := tables.BaseHoursPerLevel * float64(levelGap) *
		tables.CategoryMultiplier(category) *
		tables.SkillMultiplier(skillName)

	months := hours / tables.HoursPerMonth
	if !hasCurrentLevel {
		months += tables.NoFoundationPenaltyMonths
	}
	months += experienceGap * tables.ExperienceGapPenalty

	return math.Round(months*10) / 10
}

// priority combines importance, learning ease, and speed-to-competency into
// a 1-10 score. Critical importance and low difficulty push priority up;
// long time-to-competency pulls it down.
func priority(importance types.Importance, diff types.Difficulty, months float64) float64 {
	var importancePoints float64
	switch importance {
	case types.ImportanceCritical:
		importancePoints = 10
	case types.ImportanceImportant:
		importancePoints = 7
	default:
		importancePoints = 4
	}

	easePoints := float64(12 - 2*diff.Ordinal()) // easy=10 .. very-hard=4

	speedPoints := 10 - months
	if speedPoints < 0 {
		speedPoints = 0
	}

	p := priorityImportanceWeight*importancePoints +
		priorityEaseWeight*easePoints +
		prioritySpeedWeight*speedPoints

	if p < 1 {
		p = 1
	}
	if p > 10 {
		p = 10
	}
	return math.Round(p*10) / 10
}
