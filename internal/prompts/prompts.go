// Package prompts renders the system and user messages sent to the generation service
package prompts

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/KirkDiggler/rpg-forge/internal/clients/generation"
	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
)

const systemPrompt = `You are an expert Dungeons & Dragons 5th edition encounter designer.
Write encounters in markdown. Every creature gets its own level-three heading in exactly this form:

### 2× Goblin Archer (CR 1/4, 50 XP)

Omit the count when there is one creature. Use official challenge ratings and the XP that goes with them.
Follow each heading with tactics, terrain use and how the creatures work together.
End with a short "Treasure" section and a "Scaling" note.`

const initialTemplate = `Design a {{ .Difficulty }} combat encounter for this party:
{{ range .Party }}- {{ .ClassName }}, level {{ .Level }}
{{ end }}
Party XP thresholds: easy {{ .Thresholds.Easy }}, medium {{ .Thresholds.Medium }}, hard {{ .Thresholds.Hard }}, deadly {{ .Thresholds.Deadly }}.
Target adjusted XP (after the multiplier for the number of creatures): {{ .Target.Min }} to {{ .Target.Max }}.
Average party level {{ printf "%.1f" .AverageLevel }}; no single creature above CR {{ printf "%.0f" .CRCeiling }}.
{{- if .Region }}
Region: {{ .Region }}.
{{- end }}
{{- if .Theme }}
Theme: {{ .Theme }}.
{{- end }}
{{- if .SpecificRequest }}
The game master also asks: {{ .SpecificRequest }}
{{- end }}
{{- if .Hints }}

Party considerations:
{{ range .Hints }}- {{ . }}
{{ end }}
{{- end }}`

const correctionTemplate = `Your previous encounter (attempt {{ .Attempt }}) failed the balance check. Write a completely new encounter; do not patch the old one.

Problems found:
{{ range .Previous.Errors }}- {{ .String }}
{{ end }}
Previous numbers: {{ .Previous.TotalCreatureCount }} creatures, base XP {{ .Previous.BaseXP }}, adjusted XP {{ .Previous.AdjustedXP }} ({{ .Previous.ClassificationLabel }}).

` + initialTemplate

var (
	initialPrompt    = template.Must(template.New("initial").Parse(initialTemplate))
	correctionPrompt = template.Must(template.New("correction").Parse(correctionTemplate))
)

// EncounterRequest is everything the first prompt needs
type EncounterRequest struct {
	Party           []entities.PartyMember
	Difficulty      entities.DifficultyTier
	Thresholds      entities.PartyThresholds
	Target          entities.XPRange
	AverageLevel    float64
	CRCeiling       float64
	Region          string
	Theme           string
	SpecificRequest string
	Hints           []string
}

// CorrectionRequest asks for a full regeneration that fixes the previous attempt's problems
type CorrectionRequest struct {
	EncounterRequest
	// Attempt is the 1-based number of the attempt that failed
	Attempt  int
	Previous *entities.ValidationResult
}

// Builder renders prompts. It is stateless and safe for concurrent use.
type Builder struct{}

// NewBuilder creates a prompt builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Initial renders the first-attempt prompt
func (b *Builder) Initial(req *EncounterRequest) (*generation.Prompt, error) {
	if req == nil {
		return nil, errors.InvalidArgument("encounter request is required")
	}
	return render(initialPrompt, req)
}

// Correction renders a retry prompt carrying the previous validation result
func (b *Builder) Correction(req *CorrectionRequest) (*generation.Prompt, error) {
	if req == nil || req.Previous == nil {
		return nil, errors.InvalidArgument("correction request with a previous result is required")
	}
	return render(correctionPrompt, req)
}

func render(tmpl *template.Template, data any) (*generation.Prompt, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrapf(err, "failed to render %s prompt", tmpl.Name())
	}
	return &generation.Prompt{
		System: systemPrompt,
		User:   strings.TrimSpace(buf.String()),
	}, nil
}
