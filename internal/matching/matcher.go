// Package matching implements the skill matcher: a deterministic, staged
// comparison of a user's skills against a role's requirements producing
// matches, transferable-skill candidates, unmatched items, and an
// importance-weighted overall score.
package matching

import (
	"context"

	"github.com/jonathan/career-planner/internal/parsing"
	"github.com/jonathan/career-planner/internal/reference"
	"github.com/jonathan/career-planner/internal/taxonomy"
	"github.com/jonathan/career-planner/internal/types"
)

// Matcher matches user skills against job requirements. It holds only static
// reference tables and a synonym lookup; Match calls share no mutable state,
// so one Matcher may serve concurrent requests.
type Matcher struct {
	tables   *reference.Tables
	synonyms taxonomy.Lookup
}

// New creates a Matcher. Nil arguments fall back to the compiled-in
// reference tables and the built-in synonym table.
func New(tables *reference.Tables, synonyms taxonomy.Lookup) *Matcher {
	if tables == nil {
		tables = reference.Default()
	}
	if synonyms == nil {
		synonyms = taxonomy.NewDefaultLookup()
	}
	return &Matcher{tables: tables, synonyms: synonyms}
}

// Match runs the staged matching pipeline: exact, synonym, fuzzy, then
// transferable-candidate collection, each stage operating only on items not
// yet matched. Empty inputs yield a well-defined result, never an error;
// with zero requirements the overall score is 1.0 (vacuously satisfied).
func (m *Matcher) Match(ctx context.Context, userSkills []types.UserSkill, requirements []types.JobSkillRequirement) types.SkillMatchingResult {
	userNorms := make([]string, len(userSkills))
	for i, u := range userSkills {
		userNorms[i] = parsing.NormalizeSkillName(u.SkillName)
	}
	reqNorms := make([]string, len(requirements))
	for i, r := range requirements {
		reqNorms[i] = parsing.NormalizeSkillName(r.Skill)
	}

	userMatched := make([]bool, len(userSkills))
	reqMatched := make([]bool, len(requirements))
	matches := make([]types.SkillMatch, 0, len(requirements))

	record := func(ui, ri int, mt types.MatchType, sim float64) {
		matches = append(matches, m.newMatch(userSkills[ui], requirements[ri], mt, sim))
		userMatched[ui] = true
		reqMatched[ri] = true
	}

	// Stage 1: exact name match after normalization
	for ri := range requirements {
		if reqNorms[ri] == "" {
			continue
		}
		for ui := range userSkills {
			if userMatched[ui] || userNorms[ui] == "" {
				continue
			}
			if userNorms[ui] == reqNorms[ri] {
				record(ui, ri, types.MatchExact, 1.0)
				break
			}
		}
	}

	// Stage 2: requirement name among the user skill's known synonyms
	for ri := range requirements {
		if reqMatched[ri] || reqNorms[ri] == "" {
			continue
		}
		for ui := range userSkills {
			if userMatched[ui] || userNorms[ui] == "" {
				continue
			}
			if m.isSynonym(ctx, userSkills[ui].SkillName, reqNorms[ri]) {
				record(ui, ri, types.MatchSynonym, 1.0)
				break
			}
		}
	}

	// Stage 3: fuzzy similarity above threshold; best-scoring pair wins
	for ri := range requirements {
		if reqMatched[ri] || reqNorms[ri] == "" {
			continue
		}
		bestUser := -1
		bestSim := 0.0
		for ui := range userSkills {
			if userMatched[ui] || userNorms[ui] == "" {
				continue
			}
			if sim := similarity(userNorms[ui], reqNorms[ri]); sim > bestSim {
				bestUser = ui
				bestSim = sim
			}
		}
		if bestUser >= 0 && bestSim >= fuzzyMatchThreshold {
			record(bestUser, ri, types.MatchFuzzy, bestSim)
		}
	}

	// Stage 4: transferable candidates over remaining pairs (not matches)
	transferable := m.collectTransferable(userSkills, requirements, userMatched, reqMatched)

	result := types.SkillMatchingResult{
		Matches:               matches,
		TransferableSkills:    transferable,
		UnmatchedUserSkills:   make([]types.UserSkill, 0),
		UnmatchedRequirements: make([]types.JobSkillRequirement, 0),
	}
	for ui, matched := range userMatched {
		if !matched {
			result.UnmatchedUserSkills = append(result.UnmatchedUserSkills, userSkills[ui])
		}
	}
	for ri, matched := range reqMatched {
		if !matched {
			result.UnmatchedRequirements = append(result.UnmatchedRequirements, requirements[ri])
		}
	}

	result.OverallMatchScore = overallScore(matches, requirements)

	return result
}

// isSynonym reports whether the normalized requirement name appears among the
// user skill's synonyms. A lookup failure degrades to "no synonyms found".
func (m *Matcher) isSynonym(ctx context.Context, userSkillName, reqNorm string) bool {
	synonyms, err := m.synonyms.Synonyms(ctx, userSkillName)
	if err != nil {
		return false
	}
	for _, s := range synonyms {
		if parsing.NormalizeSkillName(s) == reqNorm {
			return true
		}
	}
	return false
}

// newMatch builds the immutable SkillMatch record for a matched pair
func (m *Matcher) newMatch(user types.UserSkill, req types.JobSkillRequirement, mt types.MatchType, sim float64) types.SkillMatch {
	levelGap := req.MinimumLevel.Ordinal() - user.Level.Ordinal()

	experienceGap := 0.0
	if req.YearsRequired > 0 && user.YearsExperience < req.YearsRequired {
		experienceGap = req.YearsRequired - user.YearsExperience
	}

	return types.SkillMatch{
		UserSkill:      user,
		JobRequirement: req,
		MatchType:      mt,
		MatchScore:     matchScore(mt, sim, levelGap, experienceGap, user.ConfidenceScore, req.Confidence),
		LevelGap:       levelGap,
		ExperienceGap:  experienceGap,
		Confidence:     matchConfidence(mt, user.ConfidenceScore, req.Confidence),
	}
}

// overallScore computes the importance-weighted mean match score over all
// requirements; unmatched requirements contribute zero. Defined as 1.0 for
// zero requirements.
func overallScore(matches []types.SkillMatch, requirements []types.JobSkillRequirement) float64 {
	if len(requirements) == 0 {
		return 1.0
	}

	matchedScores := make(map[string]float64, len(matches))
	for _, match := range matches {
		matchedScores[parsing.NormalizeSkillName(match.JobRequirement.Skill)] = match.MatchScore
	}

	weightedSum := 0.0
	totalWeight := 0.0
	for _, req := range requirements {
		weight := req.Importance.Weight()
		totalWeight += weight
		if score, ok := matchedScores[parsing.NormalizeSkillName(req.Skill)]; ok {
			weightedSum += score * weight
		}
	}

	if totalWeight == 0 {
		return 1.0
	}
	return clamp01(weightedSum / totalWeight)
}
