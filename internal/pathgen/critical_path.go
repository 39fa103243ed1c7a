package pathgen

import (
	"github.com/jonathan/career-planner/internal/parsing"
	"github.com/jonathan/career-planner/internal/types"
)

// criticalPath finds the longest chain of prerequisite-ordered skill names in
// the final step set by depth-first search from every step with no
// prerequisites, following dependent edges. The first longest path found
// wins ties, which makes the result deterministic for a given step order.
func criticalPath(steps []types.LearningStep) []string {
	if len(steps) == 0 {
		return []string{}
	}

	index := make(map[string]int, len(steps))
	for i, step := range steps {
		index[parsing.NormalizeSkillName(step.SkillName)] = i
	}

	// dependents[i] lists steps that have step i as a prerequisite
	dependents := make([][]int, len(steps))
	hasPrereq := make([]bool, len(steps))
	for i, step := range steps {
		for _, name := range step.Prerequisites {
			if p, ok := index[parsing.NormalizeSkillName(name)]; ok && p != i {
				dependents[p] = append(dependents[p], i)
				hasPrereq[i] = true
			}
		}
	}

	best := []string{}
	onPath := make([]bool, len(steps))

	var visit func(i int, path []string)
	visit = func(i int, path []string) {
		if onPath[i] {
			return // cycle; stop extending this branch
		}
		onPath[i] = true
		path = append(path, steps[i].SkillName)
		if len(path) > len(best) {
			best = append([]string(nil), path...)
		}
		for _, d := range dependents[i] {
			visit(d, path)
		}
		onPath[i] = false
	}

	for i := range steps {
		if !hasPrereq[i] {
			visit(i, nil)
		}
	}

	// A fully cyclic step set has no roots; fall back to the single longest
	// step name chain starting anywhere.
	if len(best) == 0 {
		for i := range steps {
			visit(i, nil)
		}
	}

	return best
}
