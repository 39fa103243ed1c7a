package analysis

import (
	"context"
	"testing"

	"github.com/jonathan/career-planner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRequest() Request {
	return Request{
		UserSkills: []types.UserSkill{
			{SkillID: "skill_js", SkillName: "JavaScript", SkillCategory: "Programming", Level: types.LevelIntermediate},
		},
		Requirements: []types.JobSkillRequirement{
			{Skill: "React", Category: "Web Development", Importance: types.ImportanceCritical, MinimumLevel: types.LevelAdvanced, Confidence: 1.0},
			{Skill: "JavaScript", Category: "Programming", Importance: types.ImportanceImportant, MinimumLevel: types.LevelAdvanced, Confidence: 1.0},
		},
	}
}

func TestRun_EndToEnd(t *testing.T) {
	p := New(nil, nil)

	result := p.Run(context.Background(), sampleRequest())

	// both requirements are gaps: JavaScript under-leveled, React unmatched
	require.Len(t, result.GapAnalysis.Gaps, 2)
	require.Len(t, result.LearningPath.Steps, 2)

	// prerequisite ordering survives the full pipeline
	assert.Equal(t, "JavaScript", result.LearningPath.Steps[0].SkillName)
	assert.Equal(t, "React", result.LearningPath.Steps[1].SkillName)

	// the path metadata round-trips the gap count
	assert.Equal(t, len(result.GapAnalysis.Gaps), result.LearningPath.Metadata.TotalSkills)
}

func TestRun_EmitsProgress(t *testing.T) {
	p := New(nil, nil)

	var steps []string
	req := sampleRequest()
	req.OnProgress = func(event ProgressEvent) {
		steps = append(steps, event.Step)
	}

	p.Run(context.Background(), req)

	assert.Contains(t, steps, "gap_analysis")
	assert.Contains(t, steps, "path_generation")
}

func TestRunBatch_IndependentResults(t *testing.T) {
	p := New(nil, nil)

	requests := []Request{sampleRequest(), sampleRequest(), sampleRequest()}
	results, err := p.RunBatch(context.Background(), requests, 2)

	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, result := range results {
		assert.Len(t, result.GapAnalysis.Gaps, 2)
	}
	// independent runs over identical inputs agree on everything but the path ID
	assert.Equal(t, results[0].GapAnalysis.Gaps, results[1].GapAnalysis.Gaps)
}

func TestRunBatch_CancelledContext(t *testing.T) {
	p := New(nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.RunBatch(ctx, []Request{sampleRequest()}, 1)
	assert.Error(t, err)
}

func TestRunBatch_Empty(t *testing.T) {
	p := New(nil, nil)

	results, err := p.RunBatch(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}
