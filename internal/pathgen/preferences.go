package pathgen

import (
	"fmt"
	"sort"

	"github.com/jonathan/career-planner/internal/parsing"
	"github.com/jonathan/career-planner/internal/types"
)

// Difficulty preference values for Options.DifficultyPreference
const (
	DifficultyEasyFirst = "easy-first"
	DifficultyHardFirst = "hard-first"
)

// transferableHoursReduction caps how much a transferable-skill bridge can
// shorten a step (30% at transferability 1.0)
const transferableHoursReduction = 0.3

// Options tune path generation. The zero value disables every preference and
// uses the default weekly study budget.
type Options struct {
	PrioritizeQuickWins       bool
	DifficultyPreference      string // DifficultyEasyFirst or DifficultyHardFirst
	IncludeTransferableSkills bool
	MaxPathLength             int     // 0 means unlimited
	HoursPerWeek              float64 // 0 means the default of 10
}

const defaultHoursPerWeek = 10.0

func (o *Options) hoursPerWeek() float64 {
	if o == nil || o.HoursPerWeek <= 0 {
		return defaultHoursPerWeek
	}
	return o.HoursPerWeek
}

// applyPreferences runs the best-effort re-ranking passes over the
// topologically ordered steps. Re-ranking may reorder steps regardless of
// dependencies; the topological order is the baseline, not a guarantee the
// preference passes preserve.
func applyPreferences(steps []types.LearningStep, transferable []types.TransferableSkill, opts *Options) []types.LearningStep {
	if opts == nil {
		return steps
	}

	if opts.IncludeTransferableSkills {
		applyTransferable(steps, transferable)
	}

	if opts.PrioritizeQuickWins {
		sort.SliceStable(steps, func(i, j int) bool {
			return valuePerHour(steps[i]) > valuePerHour(steps[j])
		})
	}

	switch opts.DifficultyPreference {
	case DifficultyEasyFirst:
		sort.SliceStable(steps, func(i, j int) bool {
			return steps[i].Difficulty.Ordinal() < steps[j].Difficulty.Ordinal()
		})
	case DifficultyHardFirst:
		sort.SliceStable(steps, func(i, j int) bool {
			return steps[i].Difficulty.Ordinal() > steps[j].Difficulty.Ordinal()
		})
	}

	if opts.MaxPathLength > 0 && len(steps) > opts.MaxPathLength {
		steps = capLength(steps, opts.MaxPathLength)
	}

	return steps
}

// applyTransferable shortens steps whose skills have a transferable-skill
// bridge: hours shrink proportionally to the transferability score, up to the
// reduction cap, and the bridge is explained in the step's reasoning.
func applyTransferable(steps []types.LearningStep, transferable []types.TransferableSkill) {
	best := make(map[string]types.TransferableSkill, len(transferable))
	for _, candidate := range transferable {
		key := parsing.NormalizeSkillName(candidate.ToSkillName)
		if existing, ok := best[key]; !ok || candidate.TransferabilityScore > existing.TransferabilityScore {
			best[key] = candidate
		}
	}

	for i := range steps {
		candidate, ok := best[parsing.NormalizeSkillName(steps[i].SkillName)]
		if !ok {
			continue
		}
		reduction := transferableHoursReduction * candidate.TransferabilityScore
		steps[i].EstimatedHours *= 1 - reduction
		steps[i].Reasoning += fmt.Sprintf("; your %s experience should make this faster",
			candidate.FromSkill.SkillName)
	}
}

// capLength keeps the highest-priority steps, preserving their relative order
// from the re-ranked list.
func capLength(steps []types.LearningStep, maxLength int) []types.LearningStep {
	type ranked struct {
		step  types.LearningStep
		index int
	}
	byPriority := make([]ranked, len(steps))
	for i, step := range steps {
		byPriority[i] = ranked{step: step, index: i}
	}
	sort.SliceStable(byPriority, func(i, j int) bool {
		return byPriority[i].step.Priority > byPriority[j].step.Priority
	})

	keep := make(map[int]bool, maxLength)
	for _, r := range byPriority[:maxLength] {
		keep[r.index] = true
	}

	kept := make([]types.LearningStep, 0, maxLength)
	for i, step := range steps {
		if keep[i] {
			kept = append(kept, step)
		}
	}
	return kept
}

func valuePerHour(step types.LearningStep) float64 {
	if step.EstimatedHours <= 0 {
		return step.Priority
	}
	return step.Priority / step.EstimatedHours
}

// prunePrerequisites restricts each step's prerequisite list to skills still
// present in the final step set.
func prunePrerequisites(steps []types.LearningStep) {
	present := make(map[string]bool, len(steps))
	for _, step := range steps {
		present[parsing.NormalizeSkillName(step.SkillName)] = true
	}
	for i := range steps {
		kept := make([]string, 0, len(steps[i].Prerequisites))
		for _, name := range steps[i].Prerequisites {
			if present[parsing.NormalizeSkillName(name)] {
				kept = append(kept, name)
			}
		}
		steps[i].Prerequisites = kept
	}
}
