package config

const (
	// Catalog seed file paths
	ConfigPathAchievements = "configs/achievements.json"
	ConfigPathChallenges   = "configs/challenges.json"
)

// Storage drivers
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Achievement count modes
const (
	// CountModeProxy counts plants above level 1 for plant_care criteria
	CountModeProxy = "proxy"
	// CountModeCounter uses the garden's per-action counters
	CountModeCounter = "counter"
)
