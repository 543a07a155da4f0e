package balance

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/rpg-forge/internal/engine/extract"
	"github.com/KirkDiggler/rpg-forge/internal/entities"
)

// Tolerance bands around the target range. The low band must stay below the high band.
const (
	lowTolerance  = 0.8
	highTolerance = 1.3

	// deadlyPlusFactor marks the top classification bucket
	deadlyPlusFactor = 1.3

	trivialFactor = 0.5

	// XP sums saturate here instead of wrapping; both sit far above any real encounter
	maxCreatureXP  = 1_000_000
	maxEncounterXP = 1_000_000_000
)

// EncounterMultiplier returns the DMG action-economy multiplier for the number of creatures
func EncounterMultiplier(creatureCount int) float64 {
	switch {
	case creatureCount <= 1:
		return 1.0
	case creatureCount == 2:
		return 1.5
	case creatureCount <= 6:
		return 2.0
	case creatureCount <= 10:
		return 2.5
	case creatureCount <= 14:
		return 3.0
	default:
		return 4.0
	}
}

// Classify places an adjusted XP total on the five-bucket difficulty ladder.
// Reaching a threshold counts as crossing it. Each bucket is named after the tier
// one step above the threshold it clears, so the top bucket (1.3 x deadly, the
// "deadly-plus" line) is reported as TierDeadly and labeled "Deadly"; the label
// always parses back to a requestable tier.
func Classify(adjustedXP int, t entities.PartyThresholds) entities.DifficultyTier {
	xp := float64(adjustedXP)
	switch {
	case xp >= float64(t.Deadly)*deadlyPlusFactor:
		return entities.TierDeadly
	case adjustedXP >= t.Deadly:
		return entities.TierHard
	case adjustedXP >= t.Hard:
		return entities.TierChallenging
	case adjustedXP >= t.Medium:
		return entities.TierModerate
	default:
		return entities.TierEasy
	}
}

// CRCeiling is the highest single-creature challenge rating allowed for a party of the given average level
func CRCeiling(avgLevel float64) float64 {
	return math.Ceil(avgLevel*1.5) + 2
}

// Validate scores a parsed encounter against the party and requested tier.
// It is pure: the same inputs always produce the same result.
func Validate(
	creatures []entities.ParsedCreature,
	members []entities.PartyMember,
	tier entities.DifficultyTier,
) *entities.ValidationResult {
	thresholds := ComputeThresholds(members)
	target := TargetRange(tier, thresholds)
	avgLevel := AverageLevel(members)

	totalCount, baseXP := 0, 0
	for _, c := range creatures {
		count := min(max(c.Count, 1), extract.MaxCreatureCount)
		totalCount += count
		baseXP = min(baseXP+min(max(c.XP, 0), maxCreatureXP)*count, maxEncounterXP)
	}
	adjustedXP := int(math.Round(float64(baseXP) * EncounterMultiplier(totalCount)))

	result := &entities.ValidationResult{
		Errors:              []entities.Issue{},
		AdjustedXP:          adjustedXP,
		BaseXP:              baseXP,
		TotalCreatureCount:  totalCount,
		ClassificationLabel: Classify(adjustedXP, thresholds).String(),
	}

	addIssue := func(code entities.IssueCode, format string, args ...any) {
		result.Errors = append(result.Errors, entities.Issue{Code: code, Message: fmt.Sprintf(format, args...)})
	}

	if float64(adjustedXP) < lowTolerance*float64(target.Min) {
		addIssue(entities.IssueXPTooLow,
			"adjusted XP %d is below %.0f (%.0f%% of the %s minimum %d)",
			adjustedXP, lowTolerance*float64(target.Min), lowTolerance*100, tier, target.Min)
	}
	if float64(adjustedXP) > highTolerance*float64(target.Max) {
		addIssue(entities.IssueXPTooHigh,
			"adjusted XP %d is above %.0f (%.0f%% of the %s maximum %d)",
			adjustedXP, highTolerance*float64(target.Max), highTolerance*100, tier, target.Max)
	}

	ceiling := CRCeiling(avgLevel)
	for _, c := range creatures {
		if cr := extract.ParseChallengeRating(c.ChallengeRating); cr > ceiling {
			addIssue(entities.IssueCRTooHigh,
				"%s has CR %s, above the ceiling of %.0f for average party level %.1f",
				c.Name, c.ChallengeRating, ceiling, avgLevel)
		}
	}

	if totalCount == 0 {
		addIssue(entities.IssueNoCreatures, "no creature stat headings could be found in the encounter text")
	}

	if tier >= entities.TierModerate && float64(baseXP) < trivialFactor*float64(thresholds.Easy) {
		addIssue(entities.IssueTrivial,
			"base XP %d is under half the party's easy threshold %d", baseXP, thresholds.Easy)
	}

	// every entry counts at least once, so a total of one means a single entry
	if totalCount == 1 && tier >= entities.TierChallenging {
		single := creatures[0]
		if extract.ParseChallengeRating(single.ChallengeRating) < avgLevel+3 {
			addIssue(entities.IssueNoSynergy,
				"a lone %s (CR %s) is below CR %.1f and cannot carry a %s encounter",
				single.Name, single.ChallengeRating, avgLevel+3, tier)
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}
