package errors

import (
	"fmt"
	"sort"
	"strings"
)

// Bounds enforced on encounter requests
const (
	MinCharacterLevel = 1
	MaxCharacterLevel = 20
	MinDifficultyTier = 1
	MaxDifficultyTier = 5
)

// ValidationBuilder collects field errors and turns them into one InvalidArgument
// error whose validation_errors meta maps field name to messages.
type ValidationBuilder struct {
	fields map[string][]string
}

// NewValidationBuilder creates an empty builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: map[string][]string{}}
}

// Field records a message against field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// Fieldf records a formatted message against field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField records that field is missing
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField records that field is present but unusable
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// Build returns nil when nothing was recorded
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}
	return InvalidArgument(vb.summary()).WithMeta(MetaValidationErrors, vb.fields)
}

// summary lists fields alphabetically so messages are stable across runs
func (vb *ValidationBuilder) summary() string {
	names := make([]string, 0, len(vb.fields))
	for name := range vb.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ": " + strings.Join(vb.fields[name], ", ")
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ValidateRequired records field when value is blank
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange records field when value falls outside [minValue, maxValue]
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidateEnum records field when value is not one of allowed
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
}

// ValidatePartyMember checks one roster entry, reporting under party[index]
func ValidatePartyMember(index int, className string, level int, vb *ValidationBuilder) {
	ValidateRequired(fmt.Sprintf("party[%d].className", index), className, vb)
	ValidateRange(fmt.Sprintf("party[%d].level", index), level, MinCharacterLevel, MaxCharacterLevel, vb)
}

// ValidateDifficulty checks a difficulty tier is one of the five named tiers
func ValidateDifficulty(field string, tier int, vb *ValidationBuilder) {
	ValidateRange(field, tier, MinDifficultyTier, MaxDifficultyTier, vb)
}
