package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Log message constants
const (
	// LogMsgHandlerFailed is logged for every subscriber that returns an error
	LogMsgHandlerFailed = "Event handler failed"

	// LogMsgHandlerErrorFormat wraps the aggregated handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %w"
)
