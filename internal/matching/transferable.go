package matching

import (
	"fmt"

	"github.com/jonathan/career-planner/internal/parsing"
	"github.com/jonathan/career-planner/internal/types"
)

// transferableThreshold is the minimum score for a pair to be recorded as a
// transferable-skill candidate
const transferableThreshold = 0.3

// transferability scores how well experience with a user skill carries over
// to an unmet requirement. Same-category pairs score the fixed same-category
// score; cross-category pairs consult the category-transferability table and
// fall back to keyword-family heuristics.
func (m *Matcher) transferability(user types.UserSkill, req types.JobSkillRequirement) (float64, string) {
	if score, ok := m.tables.CategoryTransfer(user.SkillCategory, req.Category); ok {
		from := parsing.NormalizeSkillName(user.SkillCategory)
		to := parsing.NormalizeSkillName(req.Category)
		if from == to {
			return score, fmt.Sprintf("%s and %s are in the same category (%s)", user.SkillName, req.Skill, user.SkillCategory)
		}
		return score, fmt.Sprintf("experience in %s commonly transfers to %s", user.SkillCategory, req.Category)
	}

	score, reason := m.tables.KeywordTransfer(
		parsing.NormalizeSkillName(user.SkillName),
		parsing.NormalizeSkillName(req.Skill),
	)
	return score, fmt.Sprintf("%s relates to %s: %s", user.SkillName, req.Skill, reason)
}

// collectTransferable records a TransferableSkill candidate for every
// remaining (user skill, requirement) pair scoring above the threshold.
// Candidates are hints for downstream planning, not consumed matches.
func (m *Matcher) collectTransferable(userSkills []types.UserSkill, requirements []types.JobSkillRequirement, userMatched, reqMatched []bool) []types.TransferableSkill {
	candidates := make([]types.TransferableSkill, 0)
	for ui, user := range userSkills {
		if userMatched[ui] {
			continue
		}
		for ri, req := range requirements {
			if reqMatched[ri] {
				continue
			}
			score, reasoning := m.transferability(user, req)
			if score <= transferableThreshold {
				continue
			}
			candidates = append(candidates, types.TransferableSkill{
				FromSkill:            user,
				ToSkillName:          req.Skill,
				ToCategory:           req.Category,
				TransferabilityScore: clamp01(score),
				Reasoning:            reasoning,
			})
		}
	}
	return candidates
}
