package pathgen

import (
	"strings"

	"github.com/jonathan/career-planner/internal/parsing"
	"github.com/jonathan/career-planner/internal/reference"
	"github.com/jonathan/career-planner/internal/types"
)

// node is one gap skill in the dependency graph. Edge lists hold indices into
// the graph's node slice and are pruned by construction: only skills present
// in the current gap set can appear.
type node struct {
	gap        types.SkillGap
	norm       string
	prereqs    []int
	dependents []int
	rawPrereqs []string // table-derived prerequisite names before pruning
}

type depGraph struct {
	nodes  []*node
	byNorm map[string]int
}

// buildGraph derives the prerequisite graph over the gap skills from the
// keyword-prerequisite, category-prerequisite, and foundational-dependent
// tables. Edges referencing skills outside the gap set are discarded; the
// surviving edge set is made symmetric so that every prerequisite edge has a
// matching dependent edge.
func buildGraph(tables *reference.Tables, gapList []types.SkillGap) *depGraph {
	g := &depGraph{
		nodes:  make([]*node, 0, len(gapList)),
		byNorm: make(map[string]int, len(gapList)),
	}

	for _, gap := range gapList {
		norm := parsing.NormalizeSkillName(gap.SkillName)
		g.nodes = append(g.nodes, &node{gap: gap, norm: norm})
		if _, exists := g.byNorm[norm]; !exists && norm != "" {
			g.byNorm[norm] = len(g.nodes) - 1
		}
	}

	for i, n := range g.nodes {
		// Keyword-derived prerequisites, pruned to the gap set
		n.rawPrereqs = tables.PrerequisitesFor(n.gap.SkillName)
		for _, name := range n.rawPrereqs {
			if j, ok := g.byNorm[parsing.NormalizeSkillName(name)]; ok && j != i {
				n.prereqs = appendUnique(n.prereqs, j)
			}
		}

		// Category-derived prerequisites: gap skills in a prerequisite category
		for _, prereqCategory := range tables.PrerequisiteCategoriesFor(n.gap.Category) {
			for j, other := range g.nodes {
				if j == i {
					continue
				}
				if parsing.NormalizeSkillName(other.gap.Category) == prereqCategory {
					n.prereqs = appendUnique(n.prereqs, j)
				}
			}
		}

		// Foundational dependents: gap skills matching a dependent keyword
		for _, keyword := range tables.DependentKeywordsFor(n.gap.SkillName) {
			for j, other := range g.nodes {
				if j == i {
					continue
				}
				if strings.Contains(other.norm, keyword) {
					n.dependents = appendUnique(n.dependents, j)
				}
			}
		}
	}

	// Symmetric closure: every prerequisite edge implies a dependent edge
	// and vice versa, keeping critical-path traversal consistent.
	for i, n := range g.nodes {
		for _, p := range n.prereqs {
			g.nodes[p].dependents = appendUnique(g.nodes[p].dependents, i)
		}
		for _, d := range n.dependents {
			g.nodes[d].prereqs = appendUnique(g.nodes[d].prereqs, i)
		}
	}

	return g
}

// topoOrder returns node indices in depth-first topological order: every
// node's pruned prerequisites come before the node itself. A re-entered
// in-progress node marks a cycle; the re-entry is skipped rather than failed,
// so cyclic subsets degrade to document order, and the flag is surfaced as a
// diagnostic.
func (g *depGraph) topoOrder() (order []int, cycleDetected bool) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(g.nodes))
	order = make([]int, 0, len(g.nodes))

	var visit func(i int)
	visit = func(i int) {
		switch state[i] {
		case visiting:
			cycleDetected = true
			return
		case done:
			return
		}
		state[i] = visiting
		for _, p := range g.nodes[i].prereqs {
			visit(p)
		}
		state[i] = done
		order = append(order, i)
	}

	for i := range g.nodes {
		visit(i)
	}

	return order, cycleDetected
}

// dependencies exports the graph as SkillDependency records with pruned
// prerequisite and dependent name lists.
func (g *depGraph) dependencies(hoursPerMonth float64) []types.SkillDependency {
	deps := make([]types.SkillDependency, 0, len(g.nodes))
	for _, n := range g.nodes {
		deps = append(deps, types.SkillDependency{
			SkillName:      n.gap.SkillName,
			Category:       n.gap.Category,
			Prerequisites:  g.names(n.prereqs),
			Dependents:     g.names(n.dependents),
			Difficulty:     n.gap.LearningDifficulty,
			EstimatedHours: n.gap.TimeToCompetency * hoursPerMonth,
			Confidence:     n.gap.Confidence,
		})
	}
	return deps
}

func (g *depGraph) names(indices []int) []string {
	names := make([]string, 0, len(indices))
	for _, i := range indices {
		names = append(names, g.nodes[i].gap.SkillName)
	}
	return names
}

func appendUnique(list []int, v int) []int {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
