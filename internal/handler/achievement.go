package handler

import (
	"net/http"

	"github.com/osse101/Greenhouse_Go/internal/achievement"
)

// AchievementHandler lists achievements for the caller
type AchievementHandler struct {
	service achievement.Service
}

// NewAchievementHandler creates a new achievement handler
func NewAchievementHandler(service achievement.Service) *AchievementHandler {
	return &AchievementHandler{service: service}
}

// ListAchievements returns every active achievement with the caller's unlock state
// @Summary List achievements
// @Tags achievements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.AchievementList
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/achievements [get]
func (h *AchievementHandler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireAccount(w, r)
	if !ok {
		return
	}

	list, err := h.service.ListAchievements(r.Context(), accountID)
	if err != nil {
		respondServiceError(w, r, OpListAchievements, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}
