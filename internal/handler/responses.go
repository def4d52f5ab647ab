package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/Greenhouse_Go/internal/cooldown"
	"github.com/osse101/Greenhouse_Go/internal/domain"
	"github.com/osse101/Greenhouse_Go/internal/logger"
	"github.com/osse101/Greenhouse_Go/internal/metrics"
)

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error string           `json:"error"`
	Kind  domain.ErrorKind `json:"kind"`
	// TimeRemaining is set for cooldown rejections, in whole minutes
	TimeRemaining *int `json:"timeRemaining,omitempty"`
}

// MessageResponse wraps a payload with a short human message
type MessageResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, kind domain.ErrorKind, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Kind: kind})
}

// statusForKind maps an error kind to its HTTP status
func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindUnauthenticated:
		return http.StatusUnauthorized
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// mapServiceError converts a service error into a status and a client-safe body.
// Internal errors get a generic message.
func mapServiceError(err error) (int, ErrorResponse) {
	kind := domain.KindOf(err)
	if kind == "" {
		kind = domain.KindInternal
	}
	resp := ErrorResponse{Kind: kind, Error: ErrMsgGenericServerError}
	if kind != domain.KindInternal {
		resp.Error = err.Error()
	}

	var cd cooldown.ErrOnCooldown
	if errors.As(err, &cd) {
		minutes := cd.RemainingMinutes()
		resp.TimeRemaining = &minutes
	}
	return statusForKind(kind), resp
}

// respondServiceError logs and writes a service error
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, resp := mapServiceError(err)
	log := logger.FromContext(r.Context())
	if status == http.StatusInternalServerError {
		log.Error(LogMsgServiceFailed, "op", op, "error", err)
	} else {
		log.Info(LogMsgServiceRejected, "op", op, "kind", resp.Kind, "error", err)
	}
	if resp.Kind == domain.KindRateLimited {
		metrics.CooldownRejections.Inc()
	}
	respondJSON(w, status, resp)
}
