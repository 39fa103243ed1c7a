package pathgen

import (
	"testing"

	"github.com/jonathan/career-planner/internal/reference"
	"github.com/jonathan/career-planner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTablesWithCycle() *reference.Tables {
	tables := reference.Default()
	tables.KeywordPrerequisites = map[string][]string{
		"alpha": {"Beta"},
		"beta":  {"Alpha"},
	}
	tables.CategoryPrerequisites = nil
	tables.FoundationalDependents = nil
	return tables
}

func stepIndex(steps []types.LearningStep, name string) int {
	for i, step := range steps {
		if step.SkillName == name {
			return i
		}
	}
	return -1
}

func TestGenerate_PrerequisiteOrdering(t *testing.T) {
	g := New(nil)

	path := g.Generate([]types.SkillGap{
		gap("React", "Web Development", 7, 3, types.DifficultyModerate),
		gap("JavaScript", "Programming", 8, 2, types.DifficultyModerate),
	}, nil, nil, nil)

	require.Len(t, path.Steps, 2)
	jsPos := stepIndex(path.Steps, "JavaScript")
	reactPos := stepIndex(path.Steps, "React")
	require.NotEqual(t, -1, jsPos)
	require.NotEqual(t, -1, reactPos)
	assert.Less(t, jsPos, reactPos, "JavaScript must precede React")
}

func TestGenerate_TotalHoursIsExactSum(t *testing.T) {
	g := New(nil)

	path := g.Generate([]types.SkillGap{
		gap("Rust", "Programming", 6, 4, types.DifficultyHard),
		gap("Figma", "Design", 5, 1.5, types.DifficultyEasy),
		gap("Docker", "DevOps", 7, 2, types.DifficultyModerate),
	}, nil, nil, nil)

	sum := 0.0
	for _, step := range path.Steps {
		sum += step.EstimatedHours
	}
	assert.Equal(t, sum, path.TotalEstimatedHours)
}

func TestGenerate_CompletionWeeks(t *testing.T) {
	g := New(nil)

	// 2 months * 40 h/month = 80 hours; at the default 10 h/week that is 8 weeks
	path := g.Generate([]types.SkillGap{
		gap("Rust", "Programming", 6, 2, types.DifficultyHard),
	}, nil, nil, nil)

	assert.Equal(t, 80.0, path.TotalEstimatedHours)
	assert.Equal(t, 8, path.EstimatedCompletionWeeks)

	// a bigger weekly budget shortens the calendar, not the work
	path = g.Generate([]types.SkillGap{
		gap("Rust", "Programming", 6, 2, types.DifficultyHard),
	}, nil, nil, &Options{HoursPerWeek: 40})
	assert.Equal(t, 2, path.EstimatedCompletionWeeks)
}

func TestGenerate_MaxPathLengthKeepsHighestPriority(t *testing.T) {
	g := New(nil)

	path := g.Generate([]types.SkillGap{
		gap("Rust", "Programming", 9, 4, types.DifficultyHard),
		gap("Figma", "Design", 7, 1.5, types.DifficultyEasy),
		gap("Excel", "Tools", 5, 1, types.DifficultyEasy),
		gap("Spanish", "Languages", 3, 12, types.DifficultyHard),
	}, nil, nil, &Options{MaxPathLength: 2})

	require.Len(t, path.Steps, 2)
	priorities := []float64{path.Steps[0].Priority, path.Steps[1].Priority}
	assert.ElementsMatch(t, []float64{9, 7}, priorities)
	// metadata still reports the full gap count
	assert.Equal(t, 4, path.Metadata.TotalSkills)
}

func TestGenerate_QuickWinsFirst(t *testing.T) {
	g := New(nil)

	path := g.Generate([]types.SkillGap{
		gap("Rust", "Programming", 6, 10, types.DifficultyHard),  // 0.015 priority/hour
		gap("Excel", "Tools", 6, 1, types.DifficultyEasy),        // 0.15 priority/hour
	}, nil, nil, &Options{PrioritizeQuickWins: true})

	require.Len(t, path.Steps, 2)
	assert.Equal(t, "Excel", path.Steps[0].SkillName)
}

func TestGenerate_DifficultyPreference(t *testing.T) {
	g := New(nil)

	gapList := []types.SkillGap{
		gap("Rust", "Programming", 6, 4, types.DifficultyVeryHard),
		gap("Excel", "Tools", 6, 1, types.DifficultyEasy),
	}

	easyFirst := g.Generate(gapList, nil, nil, &Options{DifficultyPreference: DifficultyEasyFirst})
	assert.Equal(t, "Excel", easyFirst.Steps[0].SkillName)

	hardFirst := g.Generate(gapList, nil, nil, &Options{DifficultyPreference: DifficultyHardFirst})
	assert.Equal(t, "Rust", hardFirst.Steps[0].SkillName)
}

func TestGenerate_TransferableShortensStep(t *testing.T) {
	g := New(nil)

	gapList := []types.SkillGap{gap("MongoDB", "Databases", 6, 2, types.DifficultyModerate)}
	transferable := []types.TransferableSkill{{
		FromSkill:            types.UserSkill{SkillID: "skill_mysql", SkillName: "MySQL", SkillCategory: "Databases", Level: types.LevelAdvanced},
		ToSkillName:          "MongoDB",
		ToCategory:           "Databases",
		TransferabilityScore: 0.8,
		Reasoning:            "same database family",
	}}

	without := g.Generate(gapList, nil, transferable, nil)
	with := g.Generate(gapList, nil, transferable, &Options{IncludeTransferableSkills: true})

	require.Len(t, with.Steps, 1)
	// 30% * 0.8 = 24% reduction
	assert.InDelta(t, without.Steps[0].EstimatedHours*0.76, with.Steps[0].EstimatedHours, 0.001)
	assert.Contains(t, with.Steps[0].Reasoning, "MySQL")
}

func TestGenerate_ParallelTracks(t *testing.T) {
	g := New(nil)

	path := g.Generate([]types.SkillGap{
		gap("Rust", "Programming", 6, 4, types.DifficultyHard),
		gap("Figma", "Design", 5, 1.5, types.DifficultyEasy),
	}, nil, nil, nil)

	// independent steps in different categories can run side by side
	require.Len(t, path.ParallelTracks, 1)
	assert.Len(t, path.ParallelTracks[0], 2)
}

func TestGenerate_NoParallelTrackWithinCategory(t *testing.T) {
	g := New(nil)

	path := g.Generate([]types.SkillGap{
		gap("Rust", "Programming", 6, 4, types.DifficultyHard),
		gap("Haskell", "Programming", 5, 4, types.DifficultyHard),
	}, nil, nil, nil)

	assert.Empty(t, path.ParallelTracks)
}

func TestGenerate_CriticalPathFollowsChain(t *testing.T) {
	g := New(nil)

	path := g.Generate([]types.SkillGap{
		gap("React", "Web Development", 7, 3, types.DifficultyModerate),
		gap("JavaScript", "Programming", 8, 2, types.DifficultyModerate),
		gap("Figma", "Design", 5, 1.5, types.DifficultyEasy),
	}, nil, nil, nil)

	assert.Equal(t, []string{"JavaScript", "React"}, path.CriticalPath)
}

func TestGenerate_PrerequisitesMetCountsUserSkills(t *testing.T) {
	g := New(nil)

	path := g.Generate(
		[]types.SkillGap{gap("React", "Web Development", 7, 3, types.DifficultyModerate)},
		[]types.UserSkill{
			{SkillID: "skill_js", SkillName: "JavaScript", SkillCategory: "Programming", Level: types.LevelAdvanced},
			{SkillID: "skill_html", SkillName: "HTML", SkillCategory: "Web Development", Level: types.LevelAdvanced},
		},
		nil, nil)

	// React's table prerequisites are JavaScript, HTML, CSS; the user has two
	assert.Equal(t, 2, path.Metadata.PrerequisitesMet)
}

func TestGenerate_EmptyGapSet(t *testing.T) {
	g := New(nil)

	path := g.Generate(nil, nil, nil, nil)

	assert.NotEmpty(t, path.PathID)
	assert.Empty(t, path.Steps)
	assert.Equal(t, 0.0, path.TotalEstimatedHours)
	assert.Equal(t, 0, path.EstimatedCompletionWeeks)
	assert.Equal(t, types.DifficultyEasy, path.Difficulty)
	assert.False(t, path.Metadata.CycleDetected)
}

func TestGenerate_CycleSurfacesAsWarning(t *testing.T) {
	tables := defaultTablesWithCycle()
	g := New(tables)

	path := g.Generate([]types.SkillGap{
		gap("Alpha", "Programming", 5, 2, types.DifficultyModerate),
		gap("Beta", "DevOps", 5, 2, types.DifficultyModerate),
	}, nil, nil, nil)

	assert.True(t, path.Metadata.CycleDetected)
	assert.NotEmpty(t, path.Metadata.Warnings)
	assert.Len(t, path.Steps, 2)
}

func TestGenerate_OverallDifficultyTiers(t *testing.T) {
	g := New(nil)

	path := g.Generate([]types.SkillGap{
		gap("Rust", "Programming", 6, 4, types.DifficultyVeryHard),
		gap("Haskell", "Programming", 5, 4, types.DifficultyVeryHard),
		gap("Excel", "Tools", 6, 1, types.DifficultyHard),
	}, nil, nil, nil)

	// mean ordinal (4+4+3)/3 ≈ 3.67 → very-hard
	assert.Equal(t, types.DifficultyVeryHard, path.Difficulty)
}
