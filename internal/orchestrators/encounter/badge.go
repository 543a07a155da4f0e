package encounter

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-forge/internal/entities"
)

const badgeSeparator = "\n\n---\n\n"

// appendBadge adds the human-readable balance summary to the end of the encounter text
func appendBadge(text string, outcome entities.Outcome, result *entities.ValidationResult, attempts int) string {
	return strings.TrimRight(text, " \t\n") + badgeSeparator + badge(outcome, result, attempts)
}

func badge(outcome entities.Outcome, result *entities.ValidationResult, attempts int) string {
	switch outcome {
	case entities.OutcomeValidated:
		return fmt.Sprintf("> **Balance check passed** (attempt %d): %s, %d adjusted XP across %s.",
			attempts, result.ClassificationLabel, result.AdjustedXP, creatureCount(result.TotalCreatureCount))
	case entities.OutcomeUnverified:
		return "> **Balance not verified**: no creature stat headings could be read from this encounter. " +
			"Check the creature numbers by hand before running it."
	default:
		codes := make([]string, 0, len(result.Errors))
		for _, c := range result.IssueCodes() {
			codes = append(codes, string(c))
		}
		return fmt.Sprintf("> **Balance check failed** after %d attempts (%s): %s, %d adjusted XP across %s. "+
			"Review before running.",
			attempts, strings.Join(codes, ", "), result.ClassificationLabel, result.AdjustedXP,
			creatureCount(result.TotalCreatureCount))
	}
}

func creatureCount(n int) string {
	if n == 1 {
		return "1 creature"
	}
	return fmt.Sprintf("%d creatures", n)
}
