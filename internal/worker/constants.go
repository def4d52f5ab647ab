package worker

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages for the catalog refresh job
const (
	LogMsgCatalogRefreshStarting  = "Catalog refresh starting"
	LogMsgCatalogRefreshCompleted = "Catalog refresh completed"
)

// ErrMsgCatalogRefreshFailed wraps a failed seeding run
const ErrMsgCatalogRefreshFailed = "catalog refresh failed: %w"
