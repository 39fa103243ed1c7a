package pathgen

import (
	"github.com/jonathan/career-planner/internal/parsing"
	"github.com/jonathan/career-planner/internal/types"
)

// maxSharedPrereqsInTrack caps how many prerequisites two parallel steps may share
const maxSharedPrereqsInTrack = 1

// parallelTracks greedily groups steps that can be learned side by side. Two
// steps may share a track only when neither is a prerequisite of the other,
// they belong to different categories, and they share at most one
// prerequisite. Only groups of two or more steps are reported.
func parallelTracks(steps []types.LearningStep) [][]types.LearningStep {
	grouped := make([]bool, len(steps))
	tracks := make([][]types.LearningStep, 0)

	for i := range steps {
		if grouped[i] {
			continue
		}
		members := []int{i}
		for j := i + 1; j < len(steps); j++ {
			if grouped[j] {
				continue
			}
			compatible := true
			for _, m := range members {
				if !canParallelize(steps[m], steps[j]) {
					compatible = false
					break
				}
			}
			if compatible {
				members = append(members, j)
			}
		}
		if len(members) < 2 {
			continue
		}
		track := make([]types.LearningStep, 0, len(members))
		for _, m := range members {
			grouped[m] = true
			track = append(track, steps[m])
		}
		tracks = append(tracks, track)
	}

	return tracks
}

// canParallelize reports whether two steps may share a track
func canParallelize(a, b types.LearningStep) bool {
	if isPrerequisiteOf(a, b) || isPrerequisiteOf(b, a) {
		return false
	}
	// Same-category steps compete for the same practice time
	if parsing.NormalizeSkillName(a.Category) == parsing.NormalizeSkillName(b.Category) {
		return false
	}
	return sharedPrerequisites(a, b) <= maxSharedPrereqsInTrack
}

func isPrerequisiteOf(candidate, step types.LearningStep) bool {
	norm := parsing.NormalizeSkillName(candidate.SkillName)
	for _, p := range step.Prerequisites {
		if parsing.NormalizeSkillName(p) == norm {
			return true
		}
	}
	return false
}

func sharedPrerequisites(a, b types.LearningStep) int {
	set := make(map[string]bool, len(a.Prerequisites))
	for _, p := range a.Prerequisites {
		set[parsing.NormalizeSkillName(p)] = true
	}
	shared := 0
	for _, p := range b.Prerequisites {
		if set[parsing.NormalizeSkillName(p)] {
			shared++
		}
	}
	return shared
}
