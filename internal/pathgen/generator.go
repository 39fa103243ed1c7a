// Package pathgen implements the learning path generator: it builds a pruned
// prerequisite graph over the gap skills, orders steps topologically with
// cycle tolerance, applies user-preference re-ranking, detects parallelizable
// tracks, computes the critical path, and aggregates effort estimates into a
// complete plan.
package pathgen

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-planner/internal/parsing"
	"github.com/jonathan/career-planner/internal/reference"
	"github.com/jonathan/career-planner/internal/types"
)

// Generator builds learning paths from gap analyses. Stateless across calls;
// safe for concurrent use.
type Generator struct {
	tables *reference.Tables
}

// New creates a Generator. A nil argument falls back to the compiled-in
// reference tables.
func New(tables *reference.Tables) *Generator {
	if tables == nil {
		tables = reference.Default()
	}
	return &Generator{tables: tables}
}

// Generate produces a complete learning path for the given gaps. User skills
// feed the prerequisites-met count; transferable candidates shorten steps
// when the corresponding option is set; opts may be nil for defaults. An
// empty gap set yields an empty, well-formed path.
func (g *Generator) Generate(gapList []types.SkillGap, userSkills []types.UserSkill, transferable []types.TransferableSkill, opts *Options) types.LearningPath {
	graph := buildGraph(g.tables, gapList)
	order, cycleDetected := graph.topoOrder()

	steps := make([]types.LearningStep, 0, len(order))
	for _, i := range order {
		n := graph.nodes[i]
		steps = append(steps, g.buildStep(n.gap, graph.names(n.prereqs)))
	}

	steps = applyPreferences(steps, transferable, opts)
	prunePrerequisites(steps)

	totalHours := 0.0
	for _, step := range steps {
		totalHours += step.EstimatedHours
	}

	hoursPerWeek := opts.hoursPerWeek()
	weeks := 0
	if totalHours > 0 {
		weeks = int(math.Ceil(totalHours / hoursPerWeek))
	}

	metadata := types.PathMetadata{
		GeneratedAt:      time.Now(),
		TotalSkills:      len(gapList),
		PrerequisitesMet: prerequisitesMet(graph, userSkills),
		HoursPerWeek:     hoursPerWeek,
		CycleDetected:    cycleDetected,
	}
	if cycleDetected {
		metadata.Warnings = append(metadata.Warnings,
			"dependency cycle among gap skills; cyclic steps fall back to input order")
	}

	return types.LearningPath{
		PathID:                   uuid.NewString(),
		Title:                    pathTitle(steps),
		Description:              pathDescription(steps, totalHours, weeks),
		TotalEstimatedHours:      totalHours,
		EstimatedCompletionWeeks: weeks,
		Difficulty:               overallDifficulty(steps),
		Steps:                    steps,
		ParallelTracks:           parallelTracks(steps),
		CriticalPath:             criticalPath(steps),
		Metadata:                 metadata,
	}
}

// Dependencies exposes the pruned dependency graph built for a gap set,
// mainly for callers that want to persist or display it.
func (g *Generator) Dependencies(gapList []types.SkillGap) []types.SkillDependency {
	return buildGraph(g.tables, gapList).dependencies(g.tables.HoursPerMonth)
}

// prerequisitesMet counts (gap, prerequisite) pairs where the table-derived
// prerequisite is already in the user's skill set.
func prerequisitesMet(graph *depGraph, userSkills []types.UserSkill) int {
	owned := make(map[string]bool, len(userSkills))
	for _, skill := range userSkills {
		owned[parsing.NormalizeSkillName(skill.SkillName)] = true
	}

	met := 0
	for _, n := range graph.nodes {
		for _, name := range n.rawPrereqs {
			if owned[parsing.NormalizeSkillName(name)] {
				met++
			}
		}
	}
	return met
}

// overallDifficulty is the tier of the rounded mean per-step difficulty:
// >=3.5 very-hard, >=2.5 hard, >=1.5 moderate, else easy.
func overallDifficulty(steps []types.LearningStep) types.Difficulty {
	if len(steps) == 0 {
		return types.DifficultyEasy
	}
	total := 0
	for _, step := range steps {
		total += step.Difficulty.Ordinal()
	}
	mean := float64(total) / float64(len(steps))
	switch {
	case mean >= 3.5:
		return types.DifficultyVeryHard
	case mean >= 2.5:
		return types.DifficultyHard
	case mean >= 1.5:
		return types.DifficultyModerate
	default:
		return types.DifficultyEasy
	}
}

func pathTitle(steps []types.LearningStep) string {
	switch len(steps) {
	case 0:
		return "Learning Path: no gaps to close"
	case 1:
		return fmt.Sprintf("Learning Path: %s", steps[0].SkillName)
	default:
		return fmt.Sprintf("Learning Path: %s and %d more skills", steps[0].SkillName, len(steps)-1)
	}
}

func pathDescription(steps []types.LearningStep, totalHours float64, weeks int) string {
	if len(steps) == 0 {
		return "Your skills already cover the role's requirements."
	}
	return fmt.Sprintf("A %d-step plan covering roughly %.0f hours of study, about %d week(s) at the configured pace.",
		len(steps), totalHours, weeks)
}
