package catalog

// CacheSchemaVersion is bumped when the cached value layout changes so old entries are dropped
const CacheSchemaVersion = "1.0"

const (
	keyAchievements = "achievements"
	keyChallenges   = "challenges"
)

// Log messages
const (
	LogMsgSeedStarted       = "Seeding catalog from JSON config..."
	LogMsgSeededAchievement = "Seeded achievement"
	LogMsgSeededChallenge   = "Seeded challenge"
	LogMsgSeedCompleted     = "Catalog seeded"
	LogMsgWindowKept        = "Challenge window still open, keeping it"
	LogMsgCacheInvalidated  = "Catalog cache invalidated"
)

// Error messages
const (
	ErrMsgReadConfigFailed  = "failed to read catalog config %s: %w"
	ErrMsgSchemaInvalid     = "schema validation failed for %s: %w"
	ErrMsgParseConfigFailed = "failed to parse catalog config %s: %w"
	ErrMsgDuplicateCode     = "duplicate code %q"
	ErrMsgCriteriaParams    = "achievement %s: %s criteria is missing its threshold"
	ErrMsgUpsertFailed      = "failed to upsert %s: %w"
)
