package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/osse101/Greenhouse_Go/internal/auth"
	"github.com/osse101/Greenhouse_Go/internal/domain"
	"github.com/osse101/Greenhouse_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Kind   domain.ErrorKind  `json:"kind"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and validates it.
// If it returns an error the response has already been written and the handler should return.
//
//	var req AddPlantRequest
//	if err := DecodeAndValidateRequest(r, w, &req, OpAddPlant); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, domain.KindValidation, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Kind:   domain.KindValidation,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// requireAccount returns the authenticated account or writes a 401
func requireAccount(w http.ResponseWriter, r *http.Request) (string, bool) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, domain.KindUnauthenticated, ErrMsgUnauthenticated)
		return "", false
	}
	return accountID, true
}
