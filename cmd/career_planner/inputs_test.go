package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/career-planner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadUserSkills_Valid(t *testing.T) {
	path := writeTempJSON(t, "skills.json", `[
		{"skill_id": "skill_go", "skill_name": "Go", "skill_category": "Programming", "level": "advanced", "years_experience": 4, "confidence_score": 0.9}
	]`)

	skills, err := loadUserSkills(path)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Go", skills[0].SkillName)
	assert.Equal(t, types.LevelAdvanced, skills[0].Level)
}

func TestLoadUserSkills_FileNotFound(t *testing.T) {
	_, err := loadUserSkills("/nonexistent/skills.json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read skills file")
}

func TestLoadUserSkills_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, "skills.json", `{ not json`)

	_, err := loadUserSkills(path)
	assert.Error(t, err)
}

func TestLoadUserSkills_InvalidRecord(t *testing.T) {
	path := writeTempJSON(t, "skills.json", `[
		{"skill_id": "skill_1", "skill_name": "Go", "level": "wizard"}
	]`)

	// Rejected by the JSON schema when resolvable, by struct validation otherwise
	_, err := loadUserSkills(path)
	require.Error(t, err)
}

func TestLoadRequirements_Valid(t *testing.T) {
	path := writeTempJSON(t, "requirements.json", `[
		{"skill": "Kubernetes", "category": "DevOps", "importance": "critical", "minimum_level": "intermediate", "confidence": 0.8}
	]`)

	requirements, err := loadRequirements(path)
	require.NoError(t, err)
	require.Len(t, requirements, 1)
	assert.Equal(t, types.ImportanceCritical, requirements[0].Importance)
}

func TestLoadRequirements_InvalidImportance(t *testing.T) {
	path := writeTempJSON(t, "requirements.json", `[
		{"skill": "Kubernetes", "importance": "mandatory", "minimum_level": "intermediate"}
	]`)

	_, err := loadRequirements(path)
	assert.Error(t, err)
}

func TestLoadTables_EmptyPathUsesDefaults(t *testing.T) {
	tables, err := loadTables("")
	require.NoError(t, err)
	require.NotNil(t, tables)
	assert.Greater(t, tables.BaseHoursPerLevel, 0.0)
}

func TestLoadTables_WithOverrides(t *testing.T) {
	path := writeTempJSON(t, "tables.json", `{
		"base_hours_per_level": 100
	}`)

	tables, err := loadTables(path)
	require.NoError(t, err)
	assert.Equal(t, 100.0, tables.BaseHoursPerLevel)
}

func TestWriteResult_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	err := writeResult(path, map[string]string{"status": "ok"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "ok", decoded["status"])
}
