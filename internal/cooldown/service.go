package cooldown

import (
	"fmt"
	"time"

	"github.com/osse101/Greenhouse_Go/internal/domain"
)

// Decision is the outcome of a cooldown check
type Decision struct {
	Allowed bool
	// Remaining is the exact time left before the next action is permitted
	Remaining time.Duration
}

// RemainingMinutes is the remaining wait rounded up to whole minutes
func (d Decision) RemainingMinutes() int {
	return ceilMinutes(d.Remaining)
}

// Guard decides whether an action on a plant is currently permitted.
// It holds no state beyond its configuration.
type Guard struct {
	config Config
}

// NewGuard creates a new cooldown guard
func NewGuard(config Config) *Guard {
	return &Guard{config: config}
}

// Check reports whether an action is allowed given the plant's last action time
func (g *Guard) Check(lastAction, now time.Time) Decision {
	if g.config.DevMode {
		return Decision{Allowed: true}
	}
	return Check(lastAction, now, g.config.GetWindow())
}

// Enforce returns ErrOnCooldown if the action is not allowed
func (g *Guard) Enforce(plantID string, lastAction, now time.Time) error {
	d := g.Check(lastAction, now)
	if d.Allowed {
		return nil
	}
	return ErrOnCooldown{PlantID: plantID, Remaining: d.Remaining}
}

// Check is the pure cooldown policy: at most one action per rolling window
// measured from lastAction.
func Check(lastAction, now time.Time, window time.Duration) Decision {
	elapsed := now.Sub(lastAction)
	if elapsed < window {
		return Decision{Allowed: false, Remaining: window - elapsed}
	}
	return Decision{Allowed: true}
}

func ceilMinutes(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	minutes := int(d / time.Minute)
	if d%time.Minute != 0 {
		minutes++
	}
	return minutes
}

// ErrOnCooldown is returned when a plant action is still on cooldown
type ErrOnCooldown struct {
	PlantID   string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	return fmt.Sprintf(ErrFmtCooldownMinutes, e.PlantID, e.RemainingMinutes())
}

// RemainingMinutes is the remaining wait rounded up to whole minutes
func (e ErrOnCooldown) RemainingMinutes() int {
	return ceilMinutes(e.Remaining)
}

// Is allows errors.Is() to match both ErrOnCooldown and domain.ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}
