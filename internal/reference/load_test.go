package reference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/career-planner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTables(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tables.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_OverridesScalar(t *testing.T) {
	path := writeTables(t, `{"base_hours_per_level": 120, "hours_per_month": 60}`)

	tables, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 120.0, tables.BaseHoursPerLevel)
	assert.Equal(t, 60.0, tables.HoursPerMonth)
	// untouched tables keep their defaults
	assert.Equal(t, 0.8, tables.SameCategoryTransferScore)
	assert.NotEmpty(t, tables.KeywordPrerequisites)
}

func TestLoad_ReplacesTableWholesale(t *testing.T) {
	path := writeTables(t, `{
		"keyword_prerequisites": {
			"Rust": ["Systems Programming"]
		}
	}`)

	tables, err := Load(path)
	require.NoError(t, err)

	// override replaces the default table entirely, with normalized keys
	assert.Equal(t, []string{"Systems Programming"}, tables.KeywordPrerequisites["rust"])
	assert.NotContains(t, tables.KeywordPrerequisites, "react")
}

func TestLoad_NormalizesFamilyEntries(t *testing.T) {
	path := writeTables(t, `{
		"language_families": {
			"Dot NET": ["C#", "F#", "VB.NET"]
		}
	}`)

	tables, err := Load(path)
	require.NoError(t, err)

	require.Contains(t, tables.LanguageFamilies, "dot net")
	assert.Contains(t, tables.LanguageFamilies["dot net"], "vbnet")
}

func TestLoad_RejectsUnknownProperty(t *testing.T) {
	path := writeTables(t, `{"bass_hours_per_level": 120}`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsBadDifficulty(t *testing.T) {
	path := writeTables(t, `{"category_difficulty": {"programming": "impossible"}}`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/tables.json")
	assert.Error(t, err)
}

func TestMerge_DoesNotModifyInputs(t *testing.T) {
	base := Default()
	overrides := &Tables{SameCategoryTransferScore: 0.5}

	merged := Merge(base, overrides)

	assert.Equal(t, 0.5, merged.SameCategoryTransferScore)
	assert.Equal(t, 0.8, base.SameCategoryTransferScore)
}

func TestMerge_OverrideDifficulty(t *testing.T) {
	merged := Merge(Default(), &Tables{
		CategoryDifficulty: map[string]types.Difficulty{
			"AI/ML": types.DifficultyHard,
		},
	})

	assert.Equal(t, types.DifficultyHard, merged.BaseDifficulty("ai ml"))
}
