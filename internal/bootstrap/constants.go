package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingGreenhouse  = "Starting Greenhouse"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Storage
// =============================================================================

const (
	LogMsgStoreOpened        = "Entity store opened"
	ErrMsgUnknownDriver      = "unknown storage driver %q"
	ErrMsgFailedOpenPool     = "failed to open database pool"
	ErrMsgFailedMigrate      = "failed to migrate database"
	ErrMsgFailedSeedCatalog  = "failed to seed catalog"
	LogMsgCatalogSeedSkipped = "Catalog seeding disabled, using stored definitions"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgChallengeHandlerRegistered = "Challenge progress handler registered"
	LogMsgCatalogCacheRegistered     = "Catalog cache invalidation registered"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingStore         = "Closing entity store..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)

// =============================================================================
// Background Jobs
// =============================================================================

const (
	// JobNameCatalogRefresh identifies the periodic catalog re-seed in logs
	JobNameCatalogRefresh = "catalog_refresh"

	// backgroundWorkers is the size of the pool running scheduled jobs
	backgroundWorkers = 1

	// backgroundQueueSize bounds jobs waiting for a worker
	backgroundQueueSize = 4

	LogMsgCatalogRefreshScheduled = "Catalog refresh scheduled"
	LogMsgCatalogRefreshDisabled  = "Catalog refresh disabled"
	LogMsgStoppingBackgroundJobs  = "Stopping background jobs..."
)
