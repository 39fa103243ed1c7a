package matching

import "github.com/jonathan/career-planner/internal/types"

// Base match scores per match type
const (
	exactBaseScore        = 1.0
	synonymBaseScore      = 0.9
	fuzzyBaseScore        = 0.8 // scaled by similarity
	transferableBaseScore = 0.6
)

// Confidence multipliers per match type
const (
	exactConfidence        = 1.0
	synonymConfidence      = 0.9
	fuzzyConfidence        = 0.7
	transferableConfidence = 0.5
)

// Gap penalty parameters
const (
	levelGapPenaltyPerLevel  = 0.2
	levelGapPenaltyFloor     = 0.3
	overLevelBoostPerLevel   = 0.1
	experiencePenaltyPerYear = 0.1
	experiencePenaltyFloor   = 0.5
)

// matchScore computes the 0-1 score for a matched pair. The base score is set
// by the match type, reduced when the user is under-leveled or short on
// experience, boosted when over-leveled, then scaled by the mean of the two
// confidence inputs.
func matchScore(mt types.MatchType, sim float64, levelGap int, experienceGap, userConfidence, reqConfidence float64) float64 {
	score := baseScore(mt, sim)

	if levelGap > 0 {
		penalty := 1.0 - levelGapPenaltyPerLevel*float64(levelGap)
		if penalty < levelGapPenaltyFloor {
			penalty = levelGapPenaltyFloor
		}
		score *= penalty
	} else if levelGap < 0 {
		score *= 1.0 + overLevelBoostPerLevel*float64(-levelGap)
	}

	if experienceGap > 0 {
		penalty := 1.0 - experiencePenaltyPerYear*experienceGap
		if penalty < experiencePenaltyFloor {
			penalty = experiencePenaltyFloor
		}
		score *= penalty
	}

	score *= meanConfidence(userConfidence, reqConfidence)

	return clamp01(score)
}

// matchConfidence computes the 0-1 confidence of a matched pair: the
// match-type multiplier applied to the mean input confidence, with no gap
// penalties.
func matchConfidence(mt types.MatchType, userConfidence, reqConfidence float64) float64 {
	var multiplier float64
	switch mt {
	case types.MatchExact:
		multiplier = exactConfidence
	case types.MatchSynonym:
		multiplier = synonymConfidence
	case types.MatchFuzzy:
		multiplier = fuzzyConfidence
	default:
		multiplier = transferableConfidence
	}

	return clamp01(multiplier * meanConfidence(userConfidence, reqConfidence))
}

func baseScore(mt types.MatchType, sim float64) float64 {
	switch mt {
	case types.MatchExact:
		return exactBaseScore
	case types.MatchSynonym:
		return synonymBaseScore
	case types.MatchFuzzy:
		return fuzzyBaseScore * sim
	default:
		return transferableBaseScore
	}
}

// meanConfidence averages two confidence inputs, treating unset (zero) values as 1.0
func meanConfidence(userConfidence, reqConfidence float64) float64 {
	return (confidenceOrDefault(userConfidence) + confidenceOrDefault(reqConfidence)) / 2.0
}

func confidenceOrDefault(c float64) float64 {
	if c <= 0 {
		return 1.0
	}
	return clamp01(c)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
