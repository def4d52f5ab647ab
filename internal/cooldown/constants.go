package cooldown

// =============================================================================
// Error Message Format Strings (for ErrOnCooldown.Error())
// =============================================================================

const (
	// ErrFmtCooldownMinutes formats cooldown error with whole minutes
	ErrFmtCooldownMinutes = "plant %s on cooldown: %d minute(s) remaining"
)
