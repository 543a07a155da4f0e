// Package entities provides core data structures for rpg-forge.
package entities

import (
	"fmt"
	"time"
)

// PartyMember is one adventurer in the roster supplied by the caller
type PartyMember struct {
	ClassName string `json:"className"`
	Level     int    `json:"level"`
}

// PartyThresholds holds the summed per-member XP thresholds for a party
type PartyThresholds struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
	Deadly int `json:"deadly"`
}

// XPRange is an inclusive XP interval
type XPRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DifficultyTier is the requested encounter difficulty, 1 through 5
type DifficultyTier int

// Difficulty tiers
const (
	TierEasy        DifficultyTier = 1
	TierModerate    DifficultyTier = 2
	TierChallenging DifficultyTier = 3
	TierHard        DifficultyTier = 4
	TierDeadly      DifficultyTier = 5
)

// Valid reports whether the tier is one of the five known tiers
func (t DifficultyTier) Valid() bool {
	return t >= TierEasy && t <= TierDeadly
}

// String returns the human-readable tier name
func (t DifficultyTier) String() string {
	switch t {
	case TierEasy:
		return "Easy"
	case TierModerate:
		return "Moderate"
	case TierChallenging:
		return "Challenging"
	case TierHard:
		return "Hard"
	case TierDeadly:
		return "Deadly"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// ParsedCreature is one creature block extracted from generated text.
// Entries sharing a name are kept separate.
type ParsedCreature struct {
	Name            string `json:"name"`
	ChallengeRating string `json:"challengeRating"`
	XP              int    `json:"xp"`
	Count           int    `json:"count"`
}

// IssueCode is the stable machine-readable tag of a validation diagnostic
type IssueCode string

// Validation issue codes
const (
	IssueXPTooLow    IssueCode = "XP_TOO_LOW"
	IssueXPTooHigh   IssueCode = "XP_TOO_HIGH"
	IssueCRTooHigh   IssueCode = "CR_TOO_HIGH"
	IssueNoCreatures IssueCode = "NO_CREATURES"
	IssueTrivial     IssueCode = "TRIVIAL"
	IssueNoSynergy   IssueCode = "NO_SYNERGY"
)

// Issue is a tagged diagnostic produced by the encounter validator
type Issue struct {
	Code    IssueCode `json:"code"`
	Message string    `json:"message"`
}

// String renders the issue as "CODE: message"
func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Code, i.Message)
}

// ValidationResult is the verdict for one generated encounter
type ValidationResult struct {
	Valid               bool    `json:"valid"`
	Errors              []Issue `json:"errors"`
	AdjustedXP          int     `json:"adjustedXp"`
	BaseXP              int     `json:"baseXp"`
	TotalCreatureCount  int     `json:"totalCreatureCount"`
	ClassificationLabel string  `json:"classificationLabel"`
}

// HasIssue reports whether an issue with the given code was recorded
func (r *ValidationResult) HasIssue(code IssueCode) bool {
	if r == nil {
		return false
	}
	for _, issue := range r.Errors {
		if issue.Code == code {
			return true
		}
	}
	return false
}

// IssueCodes returns the codes of all recorded issues in order
func (r *ValidationResult) IssueCodes() []IssueCode {
	if r == nil {
		return nil
	}
	codes := make([]IssueCode, 0, len(r.Errors))
	for _, issue := range r.Errors {
		codes = append(codes, issue.Code)
	}
	return codes
}

// Outcome describes how the generation loop ended
type Outcome string

// Generation outcomes
const (
	// OutcomeValidated means the accepted attempt passed every balance rule
	OutcomeValidated Outcome = "validated"
	// OutcomeUnverified means no creatures could be parsed from substantial text on the last attempt
	OutcomeUnverified Outcome = "unverified"
	// OutcomeUnvalidated means attempts ran out and the last attempt is returned as-is
	OutcomeUnvalidated Outcome = "unvalidated"
)

// ProviderLabel identifies which backing generation provider produced a completion
type ProviderLabel string

// Provider labels
const (
	ProviderPrimary     ProviderLabel = "primary"
	ProviderAlternative ProviderLabel = "alternative"
)

// Encounter is the persisted artifact of a generation request
type Encounter struct {
	ID             string            `json:"id"`
	Text           string            `json:"text"`
	Party          []PartyMember     `json:"party"`
	Difficulty     DifficultyTier    `json:"difficulty"`
	Region         string            `json:"region,omitempty"`
	Theme          string            `json:"theme,omitempty"`
	Tags           []string          `json:"tags,omitempty"`
	Validation     *ValidationResult `json:"validation"`
	Outcome        Outcome           `json:"outcome"`
	Provider       ProviderLabel     `json:"provider"`
	Attempts       int               `json:"attempts"`
	AdjustedXP     int               `json:"adjustedXp"`
	Classification string            `json:"classification"`
	CreatedAt      time.Time         `json:"createdAt"`
}
