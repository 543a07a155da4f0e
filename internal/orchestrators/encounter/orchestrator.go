// Package encounter implements the encounter orchestrator: generation, balance validation and storage
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/KirkDiggler/rpg-forge/internal/orchestrators/encounter Service

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-forge/internal/clients/generation"
	"github.com/KirkDiggler/rpg-forge/internal/engine"
	"github.com/KirkDiggler/rpg-forge/internal/entities"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
	"github.com/KirkDiggler/rpg-forge/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-forge/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-forge/internal/prompts"
	"github.com/KirkDiggler/rpg-forge/internal/repositories/encounters"
)

const (
	// DefaultMaxAttempts bounds calls to the generation service per request
	DefaultMaxAttempts = 3
	// MaxAllowedAttempts is the largest configurable attempt bound
	MaxAllowedAttempts = 10
	// DefaultMinSubstantiveLength is how many characters an unparseable reply needs to be accepted
	// on the last attempt. The value is a heuristic; tune it rather than rely on it.
	DefaultMinSubstantiveLength = 500
	// DefaultTemperature is the sampling temperature sent with every prompt
	DefaultTemperature = 0.8

	tracerName = "github.com/KirkDiggler/rpg-forge/internal/orchestrators/encounter"
)

// Service defines the interface for encounter operations
type Service interface {
	// GenerateEncounter runs the bounded generate, validate and repair loop and stores the result.
	// Only an unavailable generation service or invalid input is an error; unbalanced
	// content is returned annotated.
	GenerateEncounter(ctx context.Context, input *GenerateEncounterInput) (*GenerateEncounterOutput, error)

	// AnalyzeParty returns the XP budget and composition hints without calling the generation service
	AnalyzeParty(ctx context.Context, input *AnalyzePartyInput) (*AnalyzePartyOutput, error)

	GetEncounter(ctx context.Context, input *GetEncounterInput) (*GetEncounterOutput, error)
	ListEncounters(ctx context.Context, input *ListEncountersInput) (*ListEncountersOutput, error)
	DeleteEncounter(ctx context.Context, input *DeleteEncounterInput) (*DeleteEncounterOutput, error)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	Generator   generation.Service
	Engine      engine.Engine
	Repository  encounters.Repository
	IDGenerator idgen.Generator

	// Optional; defaults are used when unset
	Clock                clock.Clock
	Prompts              *prompts.Builder
	Tracer               trace.Tracer
	MaxAttempts          int
	MinSubstantiveLength int
	Temperature          *float64
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.MaxAttempts < 0 || c.MaxAttempts > MaxAllowedAttempts {
		vb.Fieldf("MaxAttempts", "must be between 1 and %d", MaxAllowedAttempts)
	}
	if c.MinSubstantiveLength < 0 {
		vb.Field("MinSubstantiveLength", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	generator  generation.Service
	engine     engine.Engine
	repository encounters.Repository
	idGen      idgen.Generator
	clock      clock.Clock
	prompts    *prompts.Builder
	tracer     trace.Tracer

	maxAttempts          int
	minSubstantiveLength int
	temperature          float64
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		generator:            cfg.Generator,
		engine:               cfg.Engine,
		repository:           cfg.Repository,
		idGen:                cfg.IDGenerator,
		clock:                cfg.Clock,
		prompts:              cfg.Prompts,
		tracer:               cfg.Tracer,
		maxAttempts:          cfg.MaxAttempts,
		minSubstantiveLength: cfg.MinSubstantiveLength,
		temperature:          DefaultTemperature,
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.prompts == nil {
		o.prompts = prompts.NewBuilder()
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer(tracerName)
	}
	if o.maxAttempts == 0 {
		o.maxAttempts = DefaultMaxAttempts
	}
	if o.minSubstantiveLength == 0 {
		o.minSubstantiveLength = DefaultMinSubstantiveLength
	}
	if cfg.Temperature != nil {
		o.temperature = *cfg.Temperature
	}

	return o, nil
}

// attempt is one pass through the loop. Only the last one outlives the loop.
type attempt struct {
	index      int
	text       string
	provider   entities.ProviderLabel
	creatures  []entities.ParsedCreature
	validation *entities.ValidationResult
}

func (o *orchestrator) GenerateEncounter(
	ctx context.Context,
	input *GenerateEncounterInput,
) (*GenerateEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateGenerateInput(input); err != nil {
		return nil, err
	}

	ctx, span := o.tracer.Start(ctx, "encounter.GenerateEncounter", trace.WithAttributes(
		attribute.Int("party.size", len(input.Party)),
		attribute.Int("difficulty", int(input.Difficulty)),
	))
	defer span.End()

	analysis := o.engine.AnalyzeParty(&engine.AnalyzePartyInput{
		Members:    input.Party,
		Difficulty: input.Difficulty,
	})
	request := prompts.EncounterRequest{
		Party:           input.Party,
		Difficulty:      input.Difficulty,
		Thresholds:      analysis.Thresholds,
		Target:          analysis.Target,
		AverageLevel:    analysis.AverageLevel,
		CRCeiling:       analysis.CRCeiling,
		Region:          input.Region,
		Theme:           input.Theme,
		SpecificRequest: input.SpecificRequest,
		Hints:           analysis.Hints,
	}

	slog.Info("Encounter generation requested",
		"party_size", len(input.Party),
		"difficulty", input.Difficulty.String(),
		"target_min", analysis.Target.Min,
		"target_max", analysis.Target.Max,
		"hints", len(analysis.Hints),
	)

	var last *attempt
	outcome := entities.OutcomeUnvalidated
	for i := 0; i < o.maxAttempts; i++ {
		current, err := o.runAttempt(ctx, i, &request, input, last)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "generation unavailable")
			return nil, err
		}
		last = current

		if current.validation.Valid {
			outcome = entities.OutcomeValidated
			break
		}
		if i == o.maxAttempts-1 && len(current.creatures) == 0 &&
			utf8.RuneCountInString(current.text) > o.minSubstantiveLength {
			outcome = entities.OutcomeUnverified
		}
	}

	attempts := last.index + 1
	now := o.clock.Now()
	record := &entities.Encounter{
		ID:             o.idGen.Generate(),
		Text:           appendBadge(last.text, outcome, last.validation, attempts),
		Party:          input.Party,
		Difficulty:     input.Difficulty,
		Region:         input.Region,
		Theme:          input.Theme,
		Tags:           input.Tags,
		Validation:     last.validation,
		Outcome:        outcome,
		Provider:       last.provider,
		Attempts:       attempts,
		AdjustedXP:     last.validation.AdjustedXP,
		Classification: last.validation.ClassificationLabel,
		CreatedAt:      now,
	}

	span.SetAttributes(
		attribute.String("encounter.id", record.ID),
		attribute.String("encounter.outcome", string(outcome)),
		attribute.Int("encounter.attempts", attempts),
	)

	slog.Info("Encounter generation finished",
		"encounter_id", record.ID,
		"outcome", outcome,
		"attempts", attempts,
		"provider", record.Provider,
		"adjusted_xp", record.AdjustedXP,
		"classification", record.Classification,
	)

	// A generated encounter is still playable when the store is down, so it goes
	// back to the caller unsaved rather than being thrown away.
	if _, err := o.repository.Upsert(ctx, &encounters.UpsertInput{Encounter: record}); err != nil {
		span.RecordError(err)
		slog.Error("Failed to store encounter, returning it unsaved",
			"encounter_id", record.ID,
			"error", err,
		)
		return &GenerateEncounterOutput{Encounter: record}, nil
	}

	return &GenerateEncounterOutput{Encounter: record, Stored: true}, nil
}

func (o *orchestrator) runAttempt(
	ctx context.Context,
	index int,
	request *prompts.EncounterRequest,
	input *GenerateEncounterInput,
	previous *attempt,
) (*attempt, error) {
	ctx, span := o.tracer.Start(ctx, "encounter.attempt", trace.WithAttributes(attribute.Int("attempt", index)))
	defer span.End()

	var (
		prompt *generation.Prompt
		err    error
	)
	if previous == nil {
		prompt, err = o.prompts.Initial(request)
	} else {
		prompt, err = o.prompts.Correction(&prompts.CorrectionRequest{
			EncounterRequest: *request,
			Attempt:          previous.index + 1,
			Previous:         previous.validation,
		})
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to build prompt")
	}

	completion, err := o.generator.Generate(ctx, prompt, &generation.Options{Temperature: &o.temperature})
	if err != nil {
		slog.Warn("Generation service unavailable",
			"attempt", index,
			"error", err,
		)
		return nil, unavailable(err)
	}

	creatures := o.engine.ExtractCreatures(completion.Text)
	validation := o.engine.ValidateEncounter(&engine.ValidateEncounterInput{
		Creatures:  creatures,
		Members:    input.Party,
		Difficulty: input.Difficulty,
	})

	span.SetAttributes(
		attribute.String("provider", string(completion.Provider)),
		attribute.Int("creatures", validation.TotalCreatureCount),
		attribute.Int("adjusted_xp", validation.AdjustedXP),
		attribute.Bool("valid", validation.Valid),
	)

	slog.Info("Encounter attempt validated",
		"attempt", index,
		"provider", completion.Provider,
		"creature_count", validation.TotalCreatureCount,
		"base_xp", validation.BaseXP,
		"adjusted_xp", validation.AdjustedXP,
		"valid", validation.Valid,
		"issues", fmt.Sprint(validation.IssueCodes()),
	)

	return &attempt{
		index:      index,
		text:       completion.Text,
		provider:   completion.Provider,
		creatures:  creatures,
		validation: validation,
	}, nil
}

// unavailable keeps cancellation codes and reports anything else as resource exhausted
func unavailable(err error) error {
	switch errors.GetCode(err) {
	case errors.CodeCanceled, errors.CodeDeadlineExceeded, errors.CodeResourceExhausted:
		return errors.Wrap(err, "encounter generation unavailable")
	default:
		return errors.WrapWithCode(err, errors.CodeResourceExhausted, "encounter generation unavailable")
	}
}

func (o *orchestrator) AnalyzeParty(_ context.Context, input *AnalyzePartyInput) (*AnalyzePartyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	difficulty := input.Difficulty
	if difficulty == 0 {
		difficulty = entities.TierChallenging
	}

	vb := errors.NewValidationBuilder()
	validateParty(input.Party, vb)
	validateDifficulty(difficulty, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &AnalyzePartyOutput{
		Difficulty: difficulty,
		Analysis: o.engine.AnalyzeParty(&engine.AnalyzePartyInput{
			Members:    input.Party,
			Difficulty: difficulty,
		}),
	}, nil
}

func (o *orchestrator) GetEncounter(ctx context.Context, input *GetEncounterInput) (*GetEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	out, err := o.repository.Get(ctx, &encounters.GetInput{ID: input.EncounterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get encounter %s", input.EncounterID)
	}

	return &GetEncounterOutput{Encounter: out.Encounter}, nil
}

func (o *orchestrator) ListEncounters(ctx context.Context, input *ListEncountersInput) (*ListEncountersOutput, error) {
	limit := 0
	if input != nil {
		limit = input.Limit
	}
	if limit < 0 {
		return nil, errors.InvalidArgument("limit must not be negative")
	}

	out, err := o.repository.List(ctx, &encounters.ListInput{Limit: limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list encounters")
	}

	return &ListEncountersOutput{Encounters: out.Encounters}, nil
}

func (o *orchestrator) DeleteEncounter(
	ctx context.Context,
	input *DeleteEncounterInput,
) (*DeleteEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	if _, err := o.repository.Delete(ctx, &encounters.DeleteInput{ID: input.EncounterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete encounter %s", input.EncounterID)
	}

	slog.Info("Encounter deleted", "encounter_id", input.EncounterID)

	return &DeleteEncounterOutput{}, nil
}

func validateGenerateInput(input *GenerateEncounterInput) error {
	vb := errors.NewValidationBuilder()
	validateParty(input.Party, vb)
	validateDifficulty(input.Difficulty, vb)
	return vb.Build()
}

func validateParty(party []entities.PartyMember, vb *errors.ValidationBuilder) {
	if len(party) == 0 {
		vb.RequiredField("party")
		return
	}
	for i, m := range party {
		errors.ValidatePartyMember(i, m.ClassName, m.Level, vb)
	}
}

func validateDifficulty(tier entities.DifficultyTier, vb *errors.ValidationBuilder) {
	errors.ValidateDifficulty("difficulty", int(tier), vb)
}
