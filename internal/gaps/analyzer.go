// Package gaps implements the gap analyzer: it derives a SkillGap for every
// unmet or under-leveled requirement from the matcher's output, classifies
// severity, learning difficulty, time-to-competency, and priority, partitions
// gaps into critical / quick-win / long-term buckets, and produces narrative
// recommendations.
package gaps

import (
	"context"
	"time"

	"github.com/jonathan/career-planner/internal/matching"
	"github.com/jonathan/career-planner/internal/reference"
	"github.com/jonathan/career-planner/internal/taxonomy"
	"github.com/jonathan/career-planner/internal/types"
)

// Analyzer derives skill gaps from matcher output. Stateless across calls;
// safe for concurrent use.
type Analyzer struct {
	matcher *matching.Matcher
	tables  *reference.Tables
}

// New creates an Analyzer. Nil arguments fall back to the compiled-in
// reference tables and the built-in synonym table.
func New(tables *reference.Tables, synonyms taxonomy.Lookup) *Analyzer {
	if tables == nil {
		tables = reference.Default()
	}
	return &Analyzer{
		matcher: matching.New(tables, synonyms),
		tables:  tables,
	}
}

// Analyze matches the user's skills against the requirements and derives the
// gap analysis. A gap exists exactly when a match is under-leveled
// (levelGap > 0) or a requirement went unmatched; requirements met or
// exceeded become strengths. Empty inputs yield an empty, well-defined
// result.
func (a *Analyzer) Analyze(ctx context.Context, userSkills []types.UserSkill, requirements []types.JobSkillRequirement) types.GapAnalysisResult {
	start := time.Now()

	matchResult := a.matcher.Match(ctx, userSkills, requirements)

	gapList := make([]types.SkillGap, 0, len(requirements))
	strengths := make([]types.SkillStrength, 0)

	for _, match := range matchResult.Matches {
		if match.LevelGap > 0 {
			gapList = append(gapList, a.gapFromMatch(match))
			continue
		}
		strengths = append(strengths, types.SkillStrength{
			SkillName:     match.JobRequirement.Skill,
			Category:      match.JobRequirement.Category,
			CurrentLevel:  match.UserSkill.Level,
			RequiredLevel: match.JobRequirement.MinimumLevel,
			Surplus:       -match.LevelGap,
		})
	}

	for _, req := range matchResult.UnmatchedRequirements {
		gapList = append(gapList, a.gapFromUnmatched(req))
	}

	critical, quickWins, longTerm := partition(gapList)

	result := types.GapAnalysisResult{
		MatchingResult:  matchResult,
		Gaps:            gapList,
		Strengths:       strengths,
		CriticalGaps:    critical,
		QuickWins:       quickWins,
		LongTermGoals:   longTerm,
		Recommendations: recommendations(critical, quickWins, longTerm, matchResult.TransferableSkills),
		Metadata: types.AnalysisMetadata{
			TotalSkillsAnalyzed: len(userSkills) + len(requirements),
			GapsIdentified:      len(gapList),
			AnalysisConfidence:  analysisConfidence(gapList),
			ProcessingTime:      time.Since(start),
			AnalyzedAt:          start,
		},
	}

	return result
}

// gapFromMatch derives a gap from an under-leveled match
func (a *Analyzer) gapFromMatch(match types.SkillMatch) types.SkillGap {
	req := match.JobRequirement
	levelGap := match.LevelGap // > 0 by construction

	diff := difficulty(a.tables, req.Skill, req.Category, levelGap)
	months := timeToCompetency(a.tables, req.Skill, req.Category, levelGap, true, match.ExperienceGap)

	return types.SkillGap{
		SkillName:          req.Skill,
		Category:           req.Category,
		CurrentLevel:       match.UserSkill.Level,
		RequiredLevel:      req.MinimumLevel,
		Importance:         req.Importance,
		GapSeverity:        severity(req.Importance, levelGap),
		LevelGap:           levelGap,
		TimeToCompetency:   months,
		LearningDifficulty: diff,
		Priority:           priority(req.Importance, diff, months),
		Confidence:         match.Confidence,
	}
}

// gapFromUnmatched derives a gap for a requirement with no matching skill;
// the level gap spans from zero to the required level.
func (a *Analyzer) gapFromUnmatched(req types.JobSkillRequirement) types.SkillGap {
	levelGap := req.MinimumLevel.Ordinal()

	diff := difficulty(a.tables, req.Skill, req.Category, levelGap)
	months := timeToCompetency(a.tables, req.Skill, req.Category, levelGap, false, 0)

	confidence := req.Confidence
	if confidence <= 0 {
		confidence = 1.0
	}

	return types.SkillGap{
		SkillName:          req.Skill,
		Category:           req.Category,
		RequiredLevel:      req.MinimumLevel,
		Importance:         req.Importance,
		GapSeverity:        severity(req.Importance, levelGap),
		LevelGap:           levelGap,
		TimeToCompetency:   months,
		LearningDifficulty: diff,
		Priority:           priority(req.Importance, diff, months),
		Confidence:         confidence,
	}
}

// partition assigns each gap to at most one bucket, evaluated in the order
// critical → quick-win → long-term; first match wins.
func partition(gapList []types.SkillGap) (critical, quickWins, longTerm []types.SkillGap) {
	critical = make([]types.SkillGap, 0)
	quickWins = make([]types.SkillGap, 0)
	longTerm = make([]types.SkillGap, 0)

	for _, gap := range gapList {
		switch {
		case gap.GapSeverity == types.SeverityCritical:
			critical = append(critical, gap)
		case gap.LearningDifficulty == types.DifficultyEasy &&
			gap.GapSeverity.Rank() <= types.SeverityModerate.Rank() &&
			gap.TimeToCompetency <= quickWinMaxMonths:
			quickWins = append(quickWins, gap)
		case gap.TimeToCompetency >= longTermMinMonths:
			longTerm = append(longTerm, gap)
		}
	}

	return critical, quickWins, longTerm
}

// analysisConfidence is the mean confidence over all derived gaps, defined
// as 1.0 when no gaps exist.
func analysisConfidence(gapList []types.SkillGap) float64 {
	if len(gapList) == 0 {
		return 1.0
	}
	total := 0.0
	for _, gap := range gapList {
		total += gap.Confidence
	}
	return total / float64(len(gapList))
}
