package reference

import (
	"testing"

	"github.com/jonathan/career-planner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryTransfer_SameCategory(t *testing.T) {
	tables := Default()

	score, ok := tables.CategoryTransfer("Programming", "programming")
	require.True(t, ok)
	assert.Equal(t, 0.8, score)
}

func TestCategoryTransfer_TableEntry(t *testing.T) {
	tables := Default()

	score, ok := tables.CategoryTransfer("Programming", "Web Development")
	require.True(t, ok)
	assert.Equal(t, 0.7, score)
}

func TestCategoryTransfer_NoEntry(t *testing.T) {
	tables := Default()

	_, ok := tables.CategoryTransfer("Gardening", "Programming")
	assert.False(t, ok)
}

func TestCategoryTransfer_EmptyCategoriesDoNotMatchEachOther(t *testing.T) {
	tables := Default()

	_, ok := tables.CategoryTransfer("", "")
	assert.False(t, ok)
}

func TestKeywordTransfer_LanguageFamily(t *testing.T) {
	tables := Default()

	score, reason := tables.KeywordTransfer("python", "ruby")
	assert.Equal(t, 0.7, score)
	assert.Equal(t, "related programming languages", reason)
}

func TestKeywordTransfer_FrameworkFamily(t *testing.T) {
	tables := Default()

	score, _ := tables.KeywordTransfer("react", "vue")
	assert.Equal(t, 0.6, score)
}

func TestKeywordTransfer_Unrelated(t *testing.T) {
	tables := Default()

	score, reason := tables.KeywordTransfer("photoshop", "kubernetes")
	assert.Equal(t, 0.1, score)
	assert.Equal(t, "no known relationship", reason)
}

func TestBaseDifficulty(t *testing.T) {
	tables := Default()

	assert.Equal(t, types.DifficultyVeryHard, tables.BaseDifficulty("AI/ML"))
	assert.Equal(t, types.DifficultyEasy, tables.BaseDifficulty("Tools"))
	// unknown categories default to moderate
	assert.Equal(t, types.DifficultyModerate, tables.BaseDifficulty("Underwater Basket Weaving"))
}

func TestCategoryMultiplier(t *testing.T) {
	tables := Default()

	assert.Equal(t, 2.0, tables.CategoryMultiplier("AI/ML"))
	assert.Equal(t, 1.0, tables.CategoryMultiplier("Unknown"))
}

func TestSkillMultiplier_LargestKeywordWins(t *testing.T) {
	tables := Default()

	// "deep learning" (2.0) outweighs "machine learning" keyword absence
	assert.Equal(t, 2.0, tables.SkillMultiplier("Deep Learning"))
	assert.Equal(t, 1.5, tables.SkillMultiplier("Kubernetes Administration"))
	assert.Equal(t, 1.0, tables.SkillMultiplier("Excel"))
}

func TestIsHardSkill(t *testing.T) {
	tables := Default()

	assert.True(t, tables.IsHardSkill("Machine Learning"))
	assert.True(t, tables.IsHardSkill("Kubernetes"))
	assert.False(t, tables.IsHardSkill("Git"))
}

func TestPrerequisitesFor_KeywordMatch(t *testing.T) {
	tables := Default()

	prereqs := tables.PrerequisitesFor("React Native")
	assert.Contains(t, prereqs, "JavaScript")
	assert.Contains(t, prereqs, "HTML")
}

func TestPrerequisitesFor_ExcludesSelf(t *testing.T) {
	tables := Default()

	// "deep learning" requires machine learning and python, never itself
	prereqs := tables.PrerequisitesFor("Deep Learning")
	assert.NotContains(t, prereqs, "Deep Learning")
	assert.Contains(t, prereqs, "Machine Learning")
}

func TestPrerequisitesFor_NoMatch(t *testing.T) {
	tables := Default()

	assert.Empty(t, tables.PrerequisitesFor("Public Speaking"))
}

func TestDependentKeywordsFor(t *testing.T) {
	tables := Default()

	deps := tables.DependentKeywordsFor("JavaScript")
	assert.Contains(t, deps, "react")
	assert.Contains(t, deps, "typescript")
}

func TestPrerequisiteCategoriesFor(t *testing.T) {
	tables := Default()

	assert.Equal(t, []string{"data science"}, tables.PrerequisiteCategoriesFor("AI/ML"))
	assert.Empty(t, tables.PrerequisiteCategoriesFor("Tools"))
}

func TestKeywordMatches_ShortKeywordsRequireEquality(t *testing.T) {
	// two-character keywords never match by substring
	assert.True(t, keywordMatches("go", "go"))
	assert.False(t, keywordMatches("golang", "go"))
	assert.True(t, keywordMatches("golang developer", "golang"))
}

func TestDefault_ReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.KeywordPrerequisites["react"] = []string{"Assembly"}

	b := Default()
	assert.NotContains(t, b.KeywordPrerequisites["react"], "Assembly")
}
