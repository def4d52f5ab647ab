package handler

import (
	"net/http"

	"github.com/osse101/Greenhouse_Go/internal/domain"
	"github.com/osse101/Greenhouse_Go/internal/garden"
)

// AddPlantRequest is the body of POST /garden/plants
type AddPlantRequest struct {
	Name string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Type string `json:"type" validate:"required,max=50,planttag"`
}

// RemovePlantRequest is the body of DELETE /garden/plants
type RemovePlantRequest struct {
	PlantID string `json:"plantId" validate:"required,max=64"`
}

// ActionRequest is the body of POST /garden/action
type ActionRequest struct {
	PlantID    string `json:"plantId" validate:"required,max=64"`
	ActionType string `json:"actionType" validate:"required,max=32"`
}

// GardenHandler serves the caller's garden
type GardenHandler struct {
	service garden.Service
}

// NewGardenHandler creates a new garden handler
func NewGardenHandler(service garden.Service) *GardenHandler {
	return &GardenHandler{service: service}
}

// GetGarden returns the caller's garden, creating it on first access
// @Summary Get garden
// @Description Returns the caller's garden with plants, currency and average level
// @Tags garden
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.GardenSnapshot
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/garden [get]
func (h *GardenHandler) GetGarden(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireAccount(w, r)
	if !ok {
		return
	}

	g, err := h.service.GetGarden(r.Context(), accountID)
	if err != nil {
		respondServiceError(w, r, OpGetGarden, err)
		return
	}
	respondJSON(w, http.StatusOK, domain.NewGardenSnapshot(g))
}

// AddPlant adds a plant to the caller's garden
// @Summary Add plant
// @Tags garden
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddPlantRequest true "Plant to add"
// @Success 201 {object} domain.PlantChangeResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Garden not created yet"
// @Router /api/v1/garden/plants [post]
func (h *GardenHandler) AddPlant(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req AddPlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpAddPlant); err != nil {
		return
	}

	result, err := h.service.AddPlant(r.Context(), accountID, req.Name, req.Type)
	if err != nil {
		respondServiceError(w, r, OpAddPlant, err)
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

// RemovePlant removes a plant from the caller's garden
// @Summary Remove plant
// @Tags garden
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RemovePlantRequest true "Plant to remove"
// @Success 200 {object} domain.PlantChangeResult
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/garden/plants [delete]
func (h *GardenHandler) RemovePlant(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req RemovePlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpRemovePlant); err != nil {
		return
	}

	result, err := h.service.RemovePlant(r.Context(), accountID, req.PlantID)
	if err != nil {
		respondServiceError(w, r, OpRemovePlant, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// PerformAction waters, fertilizes or prunes a plant
// @Summary Perform care action
// @Description Applies a care action; rejected with 429 and timeRemaining while the plant is on cooldown
// @Tags garden
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ActionRequest true "Action"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ErrorResponse "Unknown action"
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse "Plant on cooldown"
// @Router /api/v1/garden/action [post]
func (h *GardenHandler) PerformAction(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req ActionRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpPerformAction); err != nil {
		return
	}

	result, err := h.service.PerformAction(r.Context(), accountID, req.PlantID, domain.ActionType(req.ActionType))
	if err != nil {
		respondServiceError(w, r, OpPerformAction, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
