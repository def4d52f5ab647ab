package handler

// Generic HTTP error messages for client responses.
// Internal error details are never exposed; handlers and tests reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnauthenticated       = "Authentication required"
)

// Operation names used in logs
const (
	OpGetGarden        = "Get garden"
	OpAddPlant         = "Add plant"
	OpRemovePlant      = "Remove plant"
	OpPerformAction    = "Perform action"
	OpListAchievements = "List achievements"
	OpListChallenges   = "List challenges"
	OpJoinChallenge    = "Join challenge"
	OpClaimReward      = "Claim challenge reward"
)

// Success messages for API responses
const (
	MsgChallengeJoined = "Joined challenge"
	MsgRewardClaimed   = "Reward claimed"
)

// Log messages
const (
	LogMsgServiceRejected = "Request rejected"
	LogMsgServiceFailed   = "Request failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgReadyzFailed    = "Readiness check failed"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgStoreDown      = "store connection failed"
)
