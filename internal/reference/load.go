package reference

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/career-planner/internal/parsing"
	"github.com/jonathan/career-planner/internal/schemas"
	"github.com/jonathan/career-planner/internal/types"
)

// Load reads a reference-table override file and merges it over the
// compiled-in defaults. Tables present in the file replace the default table
// wholesale; absent tables keep their defaults. The file is validated against
// the reference-table schema before unmarshaling.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference tables %s: %w", path, err)
	}

	if err := schemas.ValidateJSONString(tablesSchema, string(data)); err != nil {
		return nil, fmt.Errorf("invalid reference tables %s: %w", path, err)
	}

	var overrides Tables
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse reference tables %s: %w", path, err)
	}

	return Merge(Default(), &overrides), nil
}

// Merge overlays non-empty override tables on top of base, normalizing map
// keys and keyword entries so lookups behave the same as with the defaults.
// Neither input is modified.
func Merge(base, overrides *Tables) *Tables {
	merged := *base

	if len(overrides.CategoryTransferability) > 0 {
		table := make(map[string]map[string]float64, len(overrides.CategoryTransferability))
		for from, targets := range overrides.CategoryTransferability {
			inner := make(map[string]float64, len(targets))
			for to, score := range targets {
				inner[parsing.NormalizeSkillName(to)] = score
			}
			table[parsing.NormalizeSkillName(from)] = inner
		}
		merged.CategoryTransferability = table
	}
	if overrides.SameCategoryTransferScore > 0 {
		merged.SameCategoryTransferScore = overrides.SameCategoryTransferScore
	}

	if len(overrides.LanguageFamilies) > 0 {
		merged.LanguageFamilies = normalizeFamilies(overrides.LanguageFamilies)
	}
	if len(overrides.FrameworkFamilies) > 0 {
		merged.FrameworkFamilies = normalizeFamilies(overrides.FrameworkFamilies)
	}
	if len(overrides.DatabaseFamilies) > 0 {
		merged.DatabaseFamilies = normalizeFamilies(overrides.DatabaseFamilies)
	}
	if len(overrides.CloudFamilies) > 0 {
		merged.CloudFamilies = normalizeFamilies(overrides.CloudFamilies)
	}

	if len(overrides.KeywordPrerequisites) > 0 {
		merged.KeywordPrerequisites = normalizeKeys(overrides.KeywordPrerequisites)
	}
	if len(overrides.CategoryPrerequisites) > 0 {
		merged.CategoryPrerequisites = normalizeFamilies(overrides.CategoryPrerequisites)
	}
	if len(overrides.FoundationalDependents) > 0 {
		merged.FoundationalDependents = normalizeFamilies(overrides.FoundationalDependents)
	}

	if len(overrides.CategoryDifficulty) > 0 {
		table := make(map[string]types.Difficulty, len(overrides.CategoryDifficulty))
		for category, difficulty := range overrides.CategoryDifficulty {
			table[parsing.NormalizeSkillName(category)] = difficulty
		}
		merged.CategoryDifficulty = table
	}
	if len(overrides.CategoryHourMultipliers) > 0 {
		merged.CategoryHourMultipliers = normalizeFloatKeys(overrides.CategoryHourMultipliers)
	}
	if len(overrides.SkillHourMultipliers) > 0 {
		merged.SkillHourMultipliers = normalizeFloatKeys(overrides.SkillHourMultipliers)
	}
	if len(overrides.HardSkillKeywords) > 0 {
		keywords := make([]string, 0, len(overrides.HardSkillKeywords))
		for _, k := range overrides.HardSkillKeywords {
			keywords = append(keywords, parsing.NormalizeSkillName(k))
		}
		merged.HardSkillKeywords = keywords
	}

	if overrides.BaseHoursPerLevel > 0 {
		merged.BaseHoursPerLevel = overrides.BaseHoursPerLevel
	}
	if overrides.HoursPerMonth > 0 {
		merged.HoursPerMonth = overrides.HoursPerMonth
	}
	if overrides.NoFoundationPenaltyMonths > 0 {
		merged.NoFoundationPenaltyMonths = overrides.NoFoundationPenaltyMonths
	}
	if overrides.ExperienceGapPenalty > 0 {
		merged.ExperienceGapPenalty = overrides.ExperienceGapPenalty
	}

	return &merged
}

// normalizeKeys normalizes map keys, leaving values (display skill names) intact
func normalizeKeys(table map[string][]string) map[string][]string {
	out := make(map[string][]string, len(table))
	for key, values := range table {
		out[parsing.NormalizeSkillName(key)] = values
	}
	return out
}

// normalizeFamilies normalizes both map keys and their keyword entries
func normalizeFamilies(table map[string][]string) map[string][]string {
	out := make(map[string][]string, len(table))
	for key, values := range table {
		normalized := make([]string, 0, len(values))
		for _, v := range values {
			normalized = append(normalized, parsing.NormalizeSkillName(v))
		}
		out[parsing.NormalizeSkillName(key)] = normalized
	}
	return out
}

func normalizeFloatKeys(table map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(table))
	for key, value := range table {
		out[parsing.NormalizeSkillName(key)] = value
	}
	return out
}
