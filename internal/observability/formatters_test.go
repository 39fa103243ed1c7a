package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/career-planner/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintMatchingResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchingResult(&types.SkillMatchingResult{
		OverallMatchScore: 0.75,
		Matches: []types.SkillMatch{
			{
				JobRequirement: types.JobSkillRequirement{Skill: "Go", Importance: types.ImportanceCritical},
				MatchType:      types.MatchExact,
				MatchScore:     1.0,
			},
		},
		UnmatchedRequirements: []types.JobSkillRequirement{
			{Skill: "Kubernetes", Importance: types.ImportanceImportant},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Skill Match Report")
	assert.Contains(t, out, "Overall match: 75%")
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "Kubernetes")
}

func TestPrintMatchingResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchingResult(nil)
	assert.Empty(t, buf.String())
}

func TestPrintGapAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGapAnalysis(&types.GapAnalysisResult{
		Gaps: []types.SkillGap{
			{SkillName: "React", GapSeverity: types.SeverityCritical, TimeToCompetency: 4.0, Priority: 8.5},
		},
		CriticalGaps: []types.SkillGap{
			{SkillName: "React"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Gap Analysis")
	assert.Contains(t, out, "React")
	assert.Contains(t, out, "critical")
}

func TestPrintLearningPath(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintLearningPath(&types.LearningPath{
		Title:                    "Learning Path: 2 Skills",
		TotalEstimatedHours:      240,
		EstimatedCompletionWeeks: 24,
		Difficulty:               types.DifficultyModerate,
		Steps: []types.LearningStep{
			{SkillName: "JavaScript", TargetLevel: types.LevelAdvanced, EstimatedHours: 80},
			{SkillName: "React", TargetLevel: types.LevelAdvanced, EstimatedHours: 160},
		},
		CriticalPath: []string{"JavaScript", "React"},
		Metadata:     types.PathMetadata{CycleDetected: true},
	})

	out := buf.String()
	assert.Contains(t, out, "Learning Path")
	assert.Contains(t, out, "240 hours")
	assert.Contains(t, out, "JavaScript")
	assert.Contains(t, out, "cycle detected")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}
	p.printBox("Title", string(long))

	assert.Contains(t, buf.String(), "...")
}
