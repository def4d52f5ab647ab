package domain

import "time"

// CriteriaKind names the closed set of achievement criteria
type CriteriaKind string

// Criteria kinds
const (
	CriteriaPlantCare    CriteriaKind = "plant_care"
	CriteriaLevelReach   CriteriaKind = "level_reach"
	CriteriaCurrencyEarn CriteriaKind = "currency_earn"
)

// IsValid reports whether the kind is one of the supported criteria
func (k CriteriaKind) IsValid() bool {
	switch k {
	case CriteriaPlantCare, CriteriaLevelReach, CriteriaCurrencyEarn:
		return true
	default:
		return false
	}
}

// Criteria is a tagged union over the supported criteria kinds.
// Only the parameters relevant to Kind are meaningful.
type Criteria struct {
	Kind CriteriaKind `json:"type"`

	// plant_care
	Action ActionType `json:"action_type,omitempty"`
	Count  int        `json:"count,omitempty"`

	// level_reach
	Level int `json:"level,omitempty"`

	// currency_earn
	Currency int `json:"currency,omitempty"`
}

// PlantCareCriteria builds a plant_care criteria
func PlantCareCriteria(action ActionType, count int) Criteria {
	return Criteria{Kind: CriteriaPlantCare, Action: action, Count: count}
}

// LevelReachCriteria builds a level_reach criteria
func LevelReachCriteria(level int) Criteria {
	return Criteria{Kind: CriteriaLevelReach, Level: level}
}

// CurrencyEarnCriteria builds a currency_earn criteria
func CurrencyEarnCriteria(currency int) Criteria {
	return Criteria{Kind: CriteriaCurrencyEarn, Currency: currency}
}

// Rarity of an achievement
type Rarity string

// Rarity values, ordered from most to least common
const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Rank orders rarities for listing
func (r Rarity) Rank() int {
	switch r {
	case RarityCommon:
		return 0
	case RarityRare:
		return 1
	case RarityEpic:
		return 2
	case RarityLegendary:
		return 3
	default:
		return 4
	}
}

// Reward granted by an achievement or challenge. Crediting is always an explicit step.
type Reward struct {
	Currency   int `json:"currency"`
	Experience int `json:"experience"`
}

// Achievement is a global, criteria-gated one-time unlock per garden
type Achievement struct {
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IconURL     string    `json:"icon_url"`
	Rarity      Rarity    `json:"rarity"`
	Criteria    Criteria  `json:"criteria"`
	Reward      Reward    `json:"reward"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// AchievementStatus is an achievement annotated for a specific garden
type AchievementStatus struct {
	Achievement
	IsUnlocked bool `json:"is_unlocked"`
}

// AchievementList is the listing returned to a caller
type AchievementList struct {
	Achievements         []AchievementStatus `json:"achievements"`
	TotalAchievements    int                 `json:"total_achievements"`
	UnlockedAchievements int                 `json:"unlocked_achievements"`
}
