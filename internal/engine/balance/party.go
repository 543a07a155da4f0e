// Package balance implements D&D 5e encounter budgeting and balance validation
package balance

import (
	"math"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
)

const (
	minLevel = 1
	maxLevel = 20
)

// xpThresholdsByLevel is the DMG per-character XP threshold table, indexed by level-1.
// Columns are easy, medium, hard, deadly.
var xpThresholdsByLevel = [maxLevel][4]int{
	{25, 50, 75, 100},
	{50, 100, 150, 200},
	{75, 150, 225, 400},
	{125, 250, 375, 500},
	{250, 500, 750, 1100},
	{300, 600, 900, 1400},
	{350, 750, 1100, 1700},
	{450, 900, 1400, 2100},
	{550, 1100, 1600, 2400},
	{600, 1200, 1900, 2800},
	{800, 1600, 2400, 3600},
	{1000, 2000, 3000, 4500},
	{1100, 2200, 3400, 5100},
	{1250, 2500, 3800, 5700},
	{1400, 2800, 4300, 6400},
	{1600, 3200, 4800, 7200},
	{2000, 3900, 5900, 8800},
	{2100, 4200, 6300, 9500},
	{2400, 4900, 7300, 10900},
	{2800, 5700, 8500, 12700},
}

// ClampLevel forces a character level into 1..20
func ClampLevel(level int) int {
	return min(max(level, minLevel), maxLevel)
}

// ComputeThresholds sums the per-level thresholds across the party.
// An empty party yields all-zero thresholds.
func ComputeThresholds(members []entities.PartyMember) entities.PartyThresholds {
	var t entities.PartyThresholds
	for _, m := range members {
		row := xpThresholdsByLevel[ClampLevel(m.Level)-1]
		t.Easy += row[0]
		t.Medium += row[1]
		t.Hard += row[2]
		t.Deadly += row[3]
	}
	return t
}

// AverageLevel returns the mean clamped level of the party, 0 for an empty party
func AverageLevel(members []entities.PartyMember) float64 {
	if len(members) == 0 {
		return 0
	}
	total := 0
	for _, m := range members {
		total += ClampLevel(m.Level)
	}
	return float64(total) / float64(len(members))
}

// TargetRange maps a difficulty tier onto an XP interval built from the party thresholds.
// Unknown tiers use the Challenging formula.
func TargetRange(tier entities.DifficultyTier, t entities.PartyThresholds) entities.XPRange {
	switch tier {
	case entities.TierEasy:
		return entities.XPRange{Min: scale(t.Easy, 0.7), Max: t.Medium - 1}
	case entities.TierModerate:
		return entities.XPRange{Min: t.Medium, Max: t.Hard - 1}
	case entities.TierHard:
		return entities.XPRange{Min: t.Deadly, Max: scale(t.Deadly, 1.3)}
	case entities.TierDeadly:
		return entities.XPRange{Min: scale(t.Deadly, 1.3), Max: t.Deadly * 2}
	default:
		return entities.XPRange{Min: t.Hard, Max: t.Deadly - 1}
	}
}

func scale(value int, factor float64) int {
	return int(math.Round(float64(value) * factor))
}
