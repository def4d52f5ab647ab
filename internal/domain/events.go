package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "garden.action.performed")
const (
	// EventTypeActionPerformed is published after a care action commits
	EventTypeActionPerformed = "garden.action.performed"

	// EventTypePlantAdded is published when a plant is added to a garden
	EventTypePlantAdded = "garden.plant.added"

	// EventTypePlantRemoved is published when a plant is removed from a garden
	EventTypePlantRemoved = "garden.plant.removed"

	// EventTypeAchievementUnlocked is published once per newly unlocked achievement
	EventTypeAchievementUnlocked = "achievement.unlocked"

	// EventTypeChallengeJoined is published after a successful enrollment
	EventTypeChallengeJoined = "challenge.joined"

	// EventTypeChallengeCompleted is published when a participation transitions to completed
	EventTypeChallengeCompleted = "challenge.completed"

	// EventTypeChallengeRewardClaimed is published when a challenge reward is credited
	EventTypeChallengeRewardClaimed = "challenge.reward_claimed"
)

// ActionPerformedPayload is carried by EventTypeActionPerformed
type ActionPerformedPayload struct {
	AccountID        string     `json:"account_id"`
	PlantID          string     `json:"plant_id"`
	Action           ActionType `json:"action"`
	ExperienceGained int        `json:"experience_gained"`
	CurrencyGained   int        `json:"currency_gained"`
	LevelUp          bool       `json:"level_up"`
	ReachedMax       bool       `json:"reached_max"`
}

// AchievementUnlockedPayload is carried by EventTypeAchievementUnlocked
type AchievementUnlockedPayload struct {
	AccountID string `json:"account_id"`
	Code      string `json:"code"`
	Rarity    Rarity `json:"rarity"`
}

// ChallengePayload is carried by the challenge.* events
type ChallengePayload struct {
	AccountID     string `json:"account_id"`
	ChallengeCode string `json:"challenge_code"`
	Currency      int    `json:"currency,omitempty"`
}

// PlantPayload is carried by the garden.plant.* events
type PlantPayload struct {
	AccountID string `json:"account_id"`
	PlantID   string `json:"plant_id"`
	Type      string `json:"type"`
}
