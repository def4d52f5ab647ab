package domain

import (
	"math"
	"time"
)

// ActionType is a care action a user can perform on a plant
type ActionType string

// Care action constants
const (
	ActionWater     ActionType = "water"
	ActionFertilize ActionType = "fertilize"
	ActionPrune     ActionType = "prune"
)

// IsValid reports whether the action is one of the known care actions
func (a ActionType) IsValid() bool {
	switch a {
	case ActionWater, ActionFertilize, ActionPrune:
		return true
	default:
		return false
	}
}

// Plant is a single cared-for entity inside a garden
type Plant struct {
	ID             string    `json:"plant_id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	Health         int       `json:"health"`
	VirtualLevel   int       `json:"virtual_level"`
	LastWatered    time.Time `json:"last_watered"`
	LastFertilized time.Time `json:"last_fertilized"`
	LastPruned     time.Time `json:"last_pruned"`
	LastAction     time.Time `json:"last_action"`
	Achievements   []string  `json:"achievements"`
}

// NewPlant creates a fresh plant with every timestamp set to the creation time
func NewPlant(id, name, plantType string, now time.Time) Plant {
	return Plant{
		ID:             id,
		Name:           name,
		Type:           plantType,
		Health:         MaxPlantHealth,
		VirtualLevel:   MinPlantLevel,
		LastWatered:    now,
		LastFertilized: now,
		LastPruned:     now,
		LastAction:     now,
		Achievements:   []string{},
	}
}

// HasAchievement reports whether the achievement code is recorded on this plant
func (p *Plant) HasAchievement(code string) bool {
	for _, c := range p.Achievements {
		if c == code {
			return true
		}
	}
	return false
}

// Garden is the per-account aggregate owning plants and currency
type Garden struct {
	AccountID    string             `json:"account_id"`
	Plants       []Plant            `json:"plants"`
	Currency     int                `json:"currency"`
	TotalLevel   int                `json:"total_level"`
	ActionCounts map[ActionType]int `json:"action_counts"`
	Version      int64              `json:"-"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// FindPlant returns a pointer into the plant list, or nil if absent
func (g *Garden) FindPlant(plantID string) *Plant {
	for i := range g.Plants {
		if g.Plants[i].ID == plantID {
			return &g.Plants[i]
		}
	}
	return nil
}

// RemovePlant drops the plant from the garden and reports whether it existed
func (g *Garden) RemovePlant(plantID string) (Plant, bool) {
	for i := range g.Plants {
		if g.Plants[i].ID == plantID {
			removed := g.Plants[i]
			g.Plants = append(g.Plants[:i], g.Plants[i+1:]...)
			return removed, true
		}
	}
	return Plant{}, false
}

// RecomputeTotalLevel sets TotalLevel to the sum of plant levels
func (g *Garden) RecomputeTotalLevel() {
	total := 0
	for _, p := range g.Plants {
		total += p.VirtualLevel
	}
	g.TotalLevel = total
}

// AverageLevel returns the rounded mean plant level, 0 for an empty garden
func (g *Garden) AverageLevel() int {
	if len(g.Plants) == 0 {
		return 0
	}
	total := 0
	for _, p := range g.Plants {
		total += p.VirtualLevel
	}
	return int(math.Round(float64(total) / float64(len(g.Plants))))
}

// MaxPlantLevel returns the highest plant level in the garden
func (g *Garden) MaxPlantLevel() int {
	maxLevel := 0
	for _, p := range g.Plants {
		if p.VirtualLevel > maxLevel {
			maxLevel = p.VirtualLevel
		}
	}
	return maxLevel
}

// HasAchievement reports whether any plant carries the achievement code
func (g *Garden) HasAchievement(code string) bool {
	for i := range g.Plants {
		if g.Plants[i].HasAchievement(code) {
			return true
		}
	}
	return false
}

// UnlockedAchievements returns the distinct achievement codes across all plants
func (g *Garden) UnlockedAchievements() map[string]bool {
	unlocked := make(map[string]bool)
	for _, p := range g.Plants {
		for _, code := range p.Achievements {
			unlocked[code] = true
		}
	}
	return unlocked
}

// Clone returns a deep copy so callers can mutate without touching stored state
func (g *Garden) Clone() *Garden {
	c := *g
	c.Plants = make([]Plant, len(g.Plants))
	for i, p := range g.Plants {
		p.Achievements = append([]string{}, p.Achievements...)
		c.Plants[i] = p
	}
	c.ActionCounts = make(map[ActionType]int, len(g.ActionCounts))
	for k, v := range g.ActionCounts {
		c.ActionCounts[k] = v
	}
	return &c
}

// ActionResult is the outcome of a successful care action
type ActionResult struct {
	Plant            Plant         `json:"plant"`
	Currency         int           `json:"currency"`
	TotalLevel       int           `json:"total_level"`
	ExperienceGained int           `json:"experience_gained"`
	CurrencyGained   int           `json:"currency_gained"`
	LevelUp          bool          `json:"level_up"`
	ReachedMax       bool          `json:"-"`
	NewAchievements  []Achievement `json:"new_achievements"`
}

// PlantChangeResult is returned by add/remove plant operations
type PlantChangeResult struct {
	Plant       *Plant `json:"plant,omitempty"`
	TotalLevel  int    `json:"total_level"`
	PlantsCount int    `json:"plants_count"`
}

// GardenSnapshot is the garden view returned to its owner
type GardenSnapshot struct {
	*Garden
	AverageLevel int `json:"average_level"`
}

// NewGardenSnapshot wraps g with its derived average level
func NewGardenSnapshot(g *Garden) *GardenSnapshot {
	return &GardenSnapshot{Garden: g, AverageLevel: g.AverageLevel()}
}
