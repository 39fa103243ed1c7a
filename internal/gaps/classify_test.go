package gaps

import (
	"testing"

	"github.com/jonathan/career-planner/internal/reference"
	"github.com/jonathan/career-planner/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestSeverity_CriticalImportanceLargeGap(t *testing.T) {
	assert.Equal(t, types.SeverityCritical, severity(types.ImportanceCritical, 2))
	assert.Equal(t, types.SeverityCritical, severity(types.ImportanceCritical, 3))
}

func TestSeverity_CriticalImportanceSmallGap(t *testing.T) {
	assert.Equal(t, types.SeverityModerate, severity(types.ImportanceCritical, 1))
}

func TestSeverity_LargeGapEscalates(t *testing.T) {
	assert.Equal(t, types.SeverityModerate, severity(types.ImportanceNiceToHave, 3))
	assert.Equal(t, types.SeverityModerate, severity(types.ImportanceImportant, 4))
}

func TestSeverity_Minor(t *testing.T) {
	assert.Equal(t, types.SeverityMinor, severity(types.ImportanceImportant, 1))
	assert.Equal(t, types.SeverityMinor, severity(types.ImportanceNiceToHave, 2))
}

func TestDifficulty_CategoryBase(t *testing.T) {
	tables := reference.Default()

	assert.Equal(t, types.DifficultyVeryHard, difficulty(tables, "TensorFlow", "AI ML", 1))
	assert.Equal(t, types.DifficultyEasy, difficulty(tables, "Git", "Tools", 1))
	assert.Equal(t, types.DifficultyModerate, difficulty(tables, "Whittling", "Crafts", 1))
}

func TestDifficulty_HardSkillKeywordBumps(t *testing.T) {
	tables := reference.Default()

	// data science base is hard; the machine-learning keyword bumps to very-hard
	assert.Equal(t, types.DifficultyVeryHard, difficulty(tables, "Machine Learning", "Data Science", 1))
}

func TestDifficulty_LargeGapBumpsAndCaps(t *testing.T) {
	tables := reference.Default()

	assert.Equal(t, types.DifficultyModerate, difficulty(tables, "Git", "Tools", 3))
	// already very-hard with two bumps stays capped
	assert.Equal(t, types.DifficultyVeryHard, difficulty(tables, "Deep Learning", "AI ML", 4))
}

func TestTimeToCompetency_BaseModel(t *testing.T) {
	tables := reference.Default()

	// one level of a plain category: 80h / 40h per month
	assert.InDelta(t, 2.0, timeToCompetency(tables, "SQL", "Databases", 1, true, 0), 0.001)
}

func TestTimeToCompetency_NoFoundationPenalty(t *testing.T) {
	tables := reference.Default()

	assert.InDelta(t, 3.0, timeToCompetency(tables, "SQL", "Databases", 1, false, 0), 0.001)
}

func TestTimeToCompetency_ExperiencePenalty(t *testing.T) {
	tables := reference.Default()

	// 2 missing years add 1.0 month
	assert.InDelta(t, 3.0, timeToCompetency(tables, "SQL", "Databases", 1, true, 2), 0.001)
}

func TestTimeToCompetency_Multipliers(t *testing.T) {
	tables := reference.Default()

	// AI/ML category (2.0) and machine-learning keyword (1.8) compound:
	// 80 * 2 * 2.0 * 1.8 / 40 = 14.4 months
	assert.InDelta(t, 14.4, timeToCompetency(tables, "Machine Learning", "AI ML", 2, true, 0), 0.001)
}

func TestPriority_CriticalEasyFastIsHighest(t *testing.T) {
	p := priority(types.ImportanceCritical, types.DifficultyEasy, 1.0)
	assert.Greater(t, p, 9.0)
	assert.LessOrEqual(t, p, 10.0)
}

func TestPriority_NiceToHaveSlowHardIsLow(t *testing.T) {
	p := priority(types.ImportanceNiceToHave, types.DifficultyVeryHard, 18.0)
	assert.Less(t, p, 4.0)
	assert.GreaterOrEqual(t, p, 1.0)
}

func TestPriority_Bounded(t *testing.T) {
	for _, imp := range []types.Importance{types.ImportanceCritical, types.ImportanceImportant, types.ImportanceNiceToHave} {
		for _, diff := range []types.Difficulty{types.DifficultyEasy, types.DifficultyModerate, types.DifficultyHard, types.DifficultyVeryHard} {
			for _, months := range []float64{0, 2.5, 12, 40} {
				p := priority(imp, diff, months)
				assert.GreaterOrEqual(t, p, 1.0)
				assert.LessOrEqual(t, p, 10.0)
			}
		}
	}
}
