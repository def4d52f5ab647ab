package handler

import (
	"net/http"

	"github.com/osse101/Greenhouse_Go/internal/challenge"
)

// ChallengeRequest is the body of the participate and claim endpoints
type ChallengeRequest struct {
	ChallengeID string `json:"challengeId" validate:"required,max=64"`
}

// ChallengeHandler serves challenge listing, enrollment and reward claims
type ChallengeHandler struct {
	service challenge.Service
}

// NewChallengeHandler creates a new challenge handler
func NewChallengeHandler(service challenge.Service) *ChallengeHandler {
	return &ChallengeHandler{service: service}
}

// ListChallenges returns open challenges with the caller's progress
// @Summary List active challenges
// @Tags challenges
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.ChallengeList
// @Router /api/v1/challenges [get]
func (h *ChallengeHandler) ListChallenges(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireAccount(w, r)
	if !ok {
		return
	}

	list, err := h.service.ListChallenges(r.Context(), accountID)
	if err != nil {
		respondServiceError(w, r, OpListChallenges, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

// Participate enrolls the caller in a challenge
// @Summary Join challenge
// @Tags challenges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChallengeRequest true "Challenge"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Challenge not active"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already participating or full"
// @Router /api/v1/challenges/participate [post]
func (h *ChallengeHandler) Participate(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req ChallengeRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpJoinChallenge); err != nil {
		return
	}

	result, err := h.service.Enroll(r.Context(), accountID, req.ChallengeID)
	if err != nil {
		respondServiceError(w, r, OpJoinChallenge, err)
		return
	}
	respondJSON(w, http.StatusCreated, MessageResponse{Message: MsgChallengeJoined, Data: result})
}

// Claim credits a completed challenge's reward
// @Summary Claim challenge reward
// @Tags challenges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChallengeRequest true "Challenge"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Challenge not completed"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Reward already claimed"
// @Router /api/v1/challenges/claim [post]
func (h *ChallengeHandler) Claim(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req ChallengeRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpClaimReward); err != nil {
		return
	}

	result, err := h.service.ClaimReward(r.Context(), accountID, req.ChallengeID)
	if err != nil {
		respondServiceError(w, r, OpClaimReward, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: MsgRewardClaimed, Data: result})
}
