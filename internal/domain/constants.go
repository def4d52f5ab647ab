package domain

import "time"

// Plant stat ranges
const (
	MinPlantHealth = 0
	MaxPlantHealth = 100
	MinPlantLevel  = 1
	MaxPlantLevel  = 100
)

// Garden seeding defaults for a first-time account
const (
	StartingCurrency = 50
)

// StarterPlant describes a plant every new garden is seeded with
type StarterPlant struct {
	Name string
	Type string
}

// StarterPlants seeded into a lazily created garden, in order
var StarterPlants = []StarterPlant{
	{Name: "Orchid", Type: "orchid"},
	{Name: "Cactus", Type: "cactus"},
}

// DefaultActionCooldown is the minimum spacing between two actions on the same plant
const DefaultActionCooldown = time.Hour
