package garden

import "github.com/osse101/Greenhouse_Go/internal/domain"

// ActionEffect is the fixed outcome of one care action
type ActionEffect struct {
	Health     int
	Experience int
	Currency   int
}

// Care action effects. Health is capped at domain.MaxPlantHealth and
// experience is added to the plant level, capped at domain.MaxPlantLevel.
var actionEffects = map[domain.ActionType]ActionEffect{
	domain.ActionWater:     {Health: 10, Experience: 5, Currency: 2},
	domain.ActionFertilize: {Health: 15, Experience: 8, Currency: 3},
	domain.ActionPrune:     {Health: 5, Experience: 3, Currency: 1},
}

// DefaultMaxRetries bounds optimistic-concurrency retries of one operation
const DefaultMaxRetries = 3

// Log messages
const (
	LogMsgGardenCreated     = "Garden created"
	LogMsgPlantAdded        = "Plant added"
	LogMsgPlantRemoved      = "Plant removed"
	LogMsgActionPerformed   = "Plant action performed"
	LogMsgAchievementUnlock = "Achievement unlocked"
	LogMsgRewardCredited    = "Reward credited"
	LogMsgRetryingConflict  = "Concurrent garden update, retrying"
	LogMsgPublishFailed     = "Failed to publish garden event"
)

// Error messages
const (
	ErrMsgDefinitionsFailed = "failed to load achievement definitions"
	ErrMsgNameRequired      = "plant name is required"
	ErrMsgTypeRequired      = "plant type is required"
	ErrMsgPlantIDRequired   = "plant id is required"
	ErrMsgNegativeReward    = "reward currency must not be negative"
	ErrMsgRetriesExhausted  = "gave up after %d attempts"
)
