package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/KirkDiggler/rpg-forge/internal/errors"
)

// errorResponse is the JSON body of every failed request
type errorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("Failed to write response", "error", err)
	}
}

// writeError maps service errors, including gRPC status errors from the shared
// service implementation, onto HTTP status codes
func writeError(w http.ResponseWriter, err error) {
	err = errors.FromGRPCError(err)
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	if status >= http.StatusInternalServerError {
		slog.Error("Request failed", "code", code, "error", err)
	}
	if code.Retryable() {
		w.Header().Set("Retry-After", "30")
	}

	writeJSON(w, status, errorResponse{
		Code:    string(code),
		Message: errors.GetMessage(err),
		Meta:    errors.GetMeta(err),
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		slog.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
