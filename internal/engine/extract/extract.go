// Package extract pulls structured creature data out of generated encounter prose
package extract

import (
	stderrors "errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
)

// MaxCreatureCount caps the multiplier on a single heading
const MaxCreatureCount = 1000

var (
	// creatureHeadingPattern matches heading lines of the shape
	// "### 2× Goblin Archer (CR 1/4, 50 XP)". A bold line ("**Ogre (CR 2, 450 XP)**")
	// counts as a heading. Groups: count, name, challenge rating, remainder of the parenthetical.
	// A decimal rating is captured whole so "CR 1.5" never reads as CR 1.
	creatureHeadingPattern = regexp.MustCompile(
		`(?im)^[ \t]*(?:#{1,6}[ \t]*(?:\*\*|__)?|\*\*|__)[ \t]*` +
			`(?:(\d+)[ \t]*[x×][ \t]*)?` +
			`([^(\n]+?)[ \t]*(?:\*\*|__)?[ \t]*` +
			`\([ \t]*CR[ \t:]*(\d+(?:\.\d+)?(?:[ \t]*/[ \t]*\d+)?)([^)\n]*)\)`)

	// claimedXPPattern finds "450 XP", "1,100 XP" or "XP 450" inside the parenthetical remainder
	claimedXPPattern = regexp.MustCompile(`(?i)(\d[\d.,']*)[ \t]*XP|XP[ \t:]*(\d[\d.,']*)`)

	nameTrimCutset = " \t*_#:-"
)

// ParseCreatures scans markdown for creature heading blocks and returns one entry per block.
// It never fails: text without matching headings yields an empty, non-nil slice.
func ParseCreatures(markdown string) []entities.ParsedCreature {
	matches := creatureHeadingPattern.FindAllStringSubmatch(markdown, -1)
	creatures := make([]entities.ParsedCreature, 0, len(matches))

	for _, m := range matches {
		name := strings.Trim(m[2], nameTrimCutset)
		if name == "" {
			continue
		}

		cr := normalizeChallengeRating(m[3])
		creatures = append(creatures, entities.ParsedCreature{
			Name:            name,
			ChallengeRating: cr,
			XP:              resolveXP(cr, m[4]),
			Count:           parseCount(m[1]),
		})
	}

	return creatures
}

// resolveXP prefers the canonical table value for a known rating and only trusts the
// inline claim when the rating is off-table.
func resolveXP(cr, remainder string) int {
	if xp, ok := XPForChallengeRating(cr); ok {
		return xp
	}
	return parseClaimedXP(remainder)
}

func parseClaimedXP(remainder string) int {
	m := claimedXPPattern.FindStringSubmatch(remainder)
	if m == nil {
		return 0
	}

	raw := m[1]
	if raw == "" {
		raw = m[2]
	}
	digits := strings.NewReplacer(",", "", ".", "", "'", "").Replace(raw)

	xp, err := strconv.Atoi(digits)
	if err != nil || xp < 0 {
		return 0
	}
	return xp
}

func parseCount(raw string) int {
	if raw == "" {
		return 1
	}
	count, err := strconv.Atoi(raw)
	if stderrors.Is(err, strconv.ErrRange) {
		return MaxCreatureCount
	}
	if err != nil || count < 1 {
		return 1
	}
	return min(count, MaxCreatureCount)
}
