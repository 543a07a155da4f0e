// Package v1 serves the encounter service as JSON over HTTP. It calls the same
// EncounterServiceServer the gRPC transport registers, so both share one contract.
package v1

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	apiv1alpha1 "github.com/KirkDiggler/rpg-forge/internal/api/v1alpha1"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
)

const maxBodyBytes = 1 << 20

// HandlerConfig holds dependencies for the HTTP handler
type HandlerConfig struct {
	Service apiv1alpha1.EncounterServiceServer
	// RateLimitPerMinute caps encounter generation per client IP; zero disables the limit
	RateLimitPerMinute int
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.RateLimitPerMinute < 0 {
		vb.Field("RateLimitPerMinute", "must not be negative")
	}
	return vb.Build()
}

// Handler routes HTTP requests to the encounter service
type Handler struct {
	service   apiv1alpha1.EncounterServiceServer
	rateLimit int
}

// NewHandler creates a new HTTP handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		service:   cfg.Service,
		rateLimit: cfg.RateLimitPerMinute,
	}, nil
}

// Routes builds the router
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.healthz)

	r.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			// generation is the only route that spends provider quota
			if h.rateLimit > 0 {
				r.Use(httprate.LimitByIP(h.rateLimit, time.Minute))
			}
			r.Post("/encounters", h.generateEncounter)
		})
		r.Get("/encounters", h.listEncounters)
		r.Get("/encounters/{id}", h.getEncounter)
		r.Delete("/encounters/{id}", h.deleteEncounter)
		r.Post("/party/analyze", h.analyzeParty)
	})

	return r
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) generateEncounter(w http.ResponseWriter, r *http.Request) {
	req := &apiv1alpha1.GenerateEncounterRequest{}
	if err := decodeJSON(w, r, req); err != nil {
		writeError(w, err)
		return
	}

	resp, err := h.service.GenerateEncounter(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	status := http.StatusCreated
	if !resp.Stored {
		status = http.StatusOK
	}
	writeJSON(w, status, resp)
}

func (h *Handler) getEncounter(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetEncounter(r.Context(), &apiv1alpha1.GetEncounterRequest{ID: chi.URLParam(r, "id")})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) listEncounters(w http.ResponseWriter, r *http.Request) {
	req := &apiv1alpha1.ListEncountersRequest{}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, errors.InvalidArgumentf("limit must be an integer, got %q", raw))
			return
		}
		req.Limit = limit
	}

	resp, err := h.service.ListEncounters(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) deleteEncounter(w http.ResponseWriter, r *http.Request) {
	_, err := h.service.DeleteEncounter(r.Context(), &apiv1alpha1.DeleteEncounterRequest{ID: chi.URLParam(r, "id")})
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) analyzeParty(w http.ResponseWriter, r *http.Request) {
	req := &apiv1alpha1.AnalyzePartyRequest{}
	if err := decodeJSON(w, r, req); err != nil {
		writeError(w, err)
		return
	}

	resp, err := h.service.AnalyzeParty(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid JSON body")
	}
	return nil
}
