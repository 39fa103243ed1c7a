// Package reference provides the static reference tables consumed by the
// matching, gap-analysis, and path-generation cores: transferability rules,
// prerequisite maps, and difficulty/effort multipliers. Compiled-in defaults
// can be overridden from a JSON file so domain experts can tune the tables
// without touching the matching logic.
package reference

import (
	"strings"

	"github.com/jonathan/career-planner/internal/parsing"
	"github.com/jonathan/career-planner/internal/types"
)

// Tables holds every static lookup table used by the core pipeline.
// All map keys and keyword entries are stored in normalized form
// (see parsing.NormalizeSkillName); values that name skills keep their
// display casing.
type Tables struct {
	// CategoryTransferability maps a source category to target categories
	// and the transferability score between them.
	CategoryTransferability map[string]map[string]float64 `json:"category_transferability"`

	// SameCategoryTransferScore is the transferability score for two skills
	// in the same category.
	SameCategoryTransferScore float64 `json:"same_category_transfer_score"`

	// Keyword families used by the transferability fallback heuristics.
	// Two skills sharing a family transfer at the family's score.
	LanguageFamilies  map[string][]string `json:"language_families"`
	FrameworkFamilies map[string][]string `json:"framework_families"`
	DatabaseFamilies  map[string][]string `json:"database_families"`
	CloudFamilies     map[string][]string `json:"cloud_families"`

	// KeywordPrerequisites maps a skill-name keyword to the skills it
	// requires (e.g. anything containing "react" requires JavaScript).
	KeywordPrerequisites map[string][]string `json:"keyword_prerequisites"`

	// CategoryPrerequisites maps a category to the categories whose skills
	// should be learned first.
	CategoryPrerequisites map[string][]string `json:"category_prerequisites"`

	// FoundationalDependents maps a foundational skill keyword to the
	// keywords of skills that build on it.
	FoundationalDependents map[string][]string `json:"foundational_dependents"`

	// CategoryDifficulty maps a category to its base learning difficulty.
	CategoryDifficulty map[string]types.Difficulty `json:"category_difficulty"`

	// CategoryHourMultipliers scales learning effort per category.
	CategoryHourMultipliers map[string]float64 `json:"category_hour_multipliers"`

	// SkillHourMultipliers scales learning effort for specific skill-name
	// keywords (substring match against the normalized skill name).
	SkillHourMultipliers map[string]float64 `json:"skill_hour_multipliers"`

	// HardSkillKeywords lists skill-name keywords that bump difficulty up a tier.
	HardSkillKeywords []string `json:"hard_skill_keywords"`

	// Effort model constants.
	BaseHoursPerLevel         float64 `json:"base_hours_per_level"`         // hours to climb one proficiency level
	HoursPerMonth             float64 `json:"hours_per_month"`              // study hours assumed per month
	NoFoundationPenaltyMonths float64 `json:"no_foundation_penalty_months"` // added when starting from zero
	ExperienceGapPenalty      float64 `json:"experience_gap_penalty"`       // months added per missing year of experience
}

// Transfer scores yielded by the keyword-family fallback heuristics
const (
	languageFamilyScore  = 0.7
	frameworkFamilyScore = 0.6
	databaseFamilyScore  = 0.6
	cloudFamilyScore     = 0.5
	unrelatedScore       = 0.1
)

// CategoryTransfer returns the transferability score between two categories.
// Same non-empty category scores SameCategoryTransferScore; otherwise the
// category table is consulted, and a zero return means "no table entry"
// (callers fall back to keyword heuristics).
func (t *Tables) CategoryTransfer(fromCategory, toCategory string) (float64, bool) {
	from := parsing.NormalizeSkillName(fromCategory)
	to := parsing.NormalizeSkillName(toCategory)
	if from != "" && from == to {
		return t.SameCategoryTransferScore, true
	}
	if targets, ok := t.CategoryTransferability[from]; ok {
		if score, ok := targets[to]; ok {
			return score, true
		}
	}
	return 0, false
}

// KeywordTransfer applies the family fallback heuristics to two normalized
// skill names, returning a score and a short reason. Unrelated skills score
// unrelatedScore.
func (t *Tables) KeywordTransfer(fromNorm, toNorm string) (float64, string) {
	if sharesFamily(t.LanguageFamilies, fromNorm, toNorm) {
		return languageFamilyScore, "related programming languages"
	}
	if sharesFamily(t.FrameworkFamilies, fromNorm, toNorm) {
		return frameworkFamilyScore, "same framework ecosystem"
	}
	if sharesFamily(t.DatabaseFamilies, fromNorm, toNorm) {
		return databaseFamilyScore, "same database family"
	}
	if sharesFamily(t.CloudFamilies, fromNorm, toNorm) {
		return cloudFamilyScore, "same cloud platform family"
	}
	return unrelatedScore, "no known relationship"
}

// sharesFamily reports whether both names contain a keyword from the same family
func sharesFamily(families map[string][]string, a, b string) bool {
	for _, keywords := range families {
		if containsAnyKeyword(a, keywords) && containsAnyKeyword(b, keywords) {
			return true
		}
	}
	return false
}

// BaseDifficulty returns the base learning difficulty for a category,
// defaulting to moderate for unknown categories.
func (t *Tables) BaseDifficulty(category string) types.Difficulty {
	if d, ok := t.CategoryDifficulty[parsing.NormalizeSkillName(category)]; ok {
		return d
	}
	return types.DifficultyModerate
}

// CategoryMultiplier returns the effort multiplier for a category (1.0 when unknown)
func (t *Tables) CategoryMultiplier(category string) float64 {
	if m, ok := t.CategoryHourMultipliers[parsing.NormalizeSkillName(category)]; ok {
		return m
	}
	return 1.0
}

// SkillMultiplier returns the effort multiplier for a skill name, taking the
// largest multiplier among matching keywords (1.0 when none match).
func (t *Tables) SkillMultiplier(skillName string) float64 {
	norm := parsing.NormalizeSkillName(skillName)
	multiplier := 1.0
	for keyword, m := range t.SkillHourMultipliers {
		if keywordMatches(norm, keyword) && m > multiplier {
			multiplier = m
		}
	}
	return multiplier
}

// IsHardSkill reports whether a skill name matches the hard-skill keyword list
func (t *Tables) IsHardSkill(skillName string) bool {
	return containsAnyKeyword(parsing.NormalizeSkillName(skillName), t.HardSkillKeywords)
}

// PrerequisitesFor returns the prerequisite skill names derived from the
// keyword table for a skill name. Results keep the table's display casing.
func (t *Tables) PrerequisitesFor(skillName string) []string {
	norm := parsing.NormalizeSkillName(skillName)
	var prereqs []string
	seen := make(map[string]bool)
	for keyword, required := range t.KeywordPrerequisites {
		if !keywordMatches(norm, keyword) {
			continue
		}
		for _, p := range required {
			key := parsing.NormalizeSkillName(p)
			if key == norm || seen[key] {
				continue
			}
			seen[key] = true
			prereqs = append(prereqs, p)
		}
	}
	return prereqs
}

// DependentKeywordsFor returns the dependent skill keywords from the
// foundational table for a skill name.
func (t *Tables) DependentKeywordsFor(skillName string) []string {
	norm := parsing.NormalizeSkillName(skillName)
	var dependents []string
	seen := make(map[string]bool)
	for foundational, deps := range t.FoundationalDependents {
		if !keywordMatches(norm, foundational) {
			continue
		}
		for _, d := range deps {
			if seen[d] {
				continue
			}
			seen[d] = true
			dependents = append(dependents, d)
		}
	}
	return dependents
}

// PrerequisiteCategoriesFor returns the prerequisite categories for a category
func (t *Tables) PrerequisiteCategoriesFor(category string) []string {
	return t.CategoryPrerequisites[parsing.NormalizeSkillName(category)]
}

// keywordMatches reports whether a normalized skill name matches a keyword:
// equal, or containing the keyword as a substring for multi-character keywords.
func keywordMatches(normName, keyword string) bool {
	if normName == keyword {
		return true
	}
	// Substring matching only for keywords long enough to be unambiguous
	return len(keyword) >= 3 && strings.Contains(normName, keyword)
}

func containsAnyKeyword(normName string, keywords []string) bool {
	for _, k := range keywords {
		if keywordMatches(normName, k) {
			return true
		}
	}
	return false
}
