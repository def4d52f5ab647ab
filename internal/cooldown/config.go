package cooldown

import (
	"time"

	"github.com/osse101/Greenhouse_Go/internal/domain"
)

// Config holds cooldown guard configuration
type Config struct {
	// DevMode bypasses all cooldowns when true
	DevMode bool

	// Window is the minimum spacing between two actions on the same plant.
	// Zero means domain.DefaultActionCooldown.
	Window time.Duration
}

// GetWindow returns the effective cooldown window
func (c Config) GetWindow() time.Duration {
	if c.Window > 0 {
		return c.Window
	}
	return domain.DefaultActionCooldown
}
