package pathgen

import (
	"fmt"

	"github.com/jonathan/career-planner/internal/types"
)

// buildStep turns a gap and its pruned prerequisite names into a learning step
func (g *Generator) buildStep(gap types.SkillGap, prereqNames []string) types.LearningStep {
	return types.LearningStep{
		SkillName:          gap.SkillName,
		Category:           gap.Category,
		CurrentLevel:       gap.CurrentLevel,
		TargetLevel:        gap.RequiredLevel,
		Priority:           gap.Priority,
		EstimatedHours:     gap.TimeToCompetency * g.tables.HoursPerMonth,
		Prerequisites:      prereqNames,
		LearningObjectives: objectives(gap),
		Milestones:         milestones(gap),
		Difficulty:         gap.LearningDifficulty,
		Reasoning:          reasoning(gap),
	}
}

func objectives(gap types.SkillGap) []string {
	objs := []string{
		fmt.Sprintf("Reach %s proficiency in %s", gap.RequiredLevel, gap.SkillName),
		fmt.Sprintf("Apply %s in a hands-on project", gap.SkillName),
	}
	if gap.Importance == types.ImportanceCritical {
		objs = append(objs, fmt.Sprintf("Be ready to demonstrate %s in interviews", gap.SkillName))
	}
	return objs
}

// milestones lists one milestone per level between the current and target levels
func milestones(gap types.SkillGap) []string {
	start := gap.CurrentLevel.Ordinal() // 0 when starting from scratch
	target := gap.RequiredLevel.Ordinal()

	steps := make([]string, 0, target-start)
	for ordinal := start + 1; ordinal <= target; ordinal++ {
		steps = append(steps, fmt.Sprintf("Reach %s level in %s", levelForOrdinal(ordinal), gap.SkillName))
	}
	return steps
}

func levelForOrdinal(ordinal int) types.SkillLevel {
	switch ordinal {
	case 1:
		return types.LevelBeginner
	case 2:
		return types.LevelIntermediate
	case 3:
		return types.LevelAdvanced
	default:
		return types.LevelExpert
	}
}

func reasoning(gap types.SkillGap) string {
	if gap.CurrentLevel == "" {
		return fmt.Sprintf("%s is a %s requirement and you have no recorded experience with it",
			gap.SkillName, gap.Importance)
	}
	return fmt.Sprintf("%s is a %s requirement; you are at %s and the role needs %s",
		gap.SkillName, gap.Importance, gap.CurrentLevel, gap.RequiredLevel)
}
