package gaps

import (
	"fmt"

	"github.com/jonathan/career-planner/internal/parsing"
	"github.com/jonathan/career-planner/internal/types"
)

// recommendations produces three tiers of narrative guidance from the gap
// buckets plus the transferable-skill candidates. Each transferable candidate
// is surfaced once, referencing the skill that bridges it.
func recommendations(critical, quickWins, longTerm []types.SkillGap, transferable []types.TransferableSkill) types.Recommendations {
	recs := types.Recommendations{
		Immediate: make([]string, 0, len(critical)),
		ShortTerm: make([]string, 0, len(quickWins)+len(transferable)),
		LongTerm:  make([]string, 0, len(longTerm)),
	}

	for _, gap := range critical {
		recs.Immediate = append(recs.Immediate, fmt.Sprintf(
			"Close the %s gap first: it is %s for the role and you are %d level(s) below the requirement.",
			gap.SkillName, gap.Importance, gap.LevelGap))
	}

	for _, gap := range quickWins {
		recs.ShortTerm = append(recs.ShortTerm, fmt.Sprintf(
			"Pick up %s as a quick win: roughly %.1f month(s) of %s-difficulty learning.",
			gap.SkillName, gap.TimeToCompetency, gap.LearningDifficulty))
	}

	seen := make(map[string]bool, len(transferable))
	for _, candidate := range transferable {
		key := parsing.NormalizeSkillName(candidate.ToSkillName)
		if seen[key] {
			continue
		}
		seen[key] = true
		recs.ShortTerm = append(recs.ShortTerm, fmt.Sprintf(
			"Lean on your %s experience to learn %s faster (%s).",
			candidate.FromSkill.SkillName, candidate.ToSkillName, candidate.Reasoning))
	}

	for _, gap := range longTerm {
		recs.LongTerm = append(recs.LongTerm, fmt.Sprintf(
			"Plan %s as a long-term goal: about %.1f months to reach the %s level.",
			gap.SkillName, gap.TimeToCompetency, gap.RequiredLevel))
	}

	return recs
}
