package bootstrap

// =============================================================================
// Log Messages
// =============================================================================

const (
	LogMsgLoggingInitialized = "Logging initialized"
	LogMsgStarting           = "Starting Baby Egg Bot"
	LogMsgConfigLoaded       = "Configuration loaded"
	LogMsgBackendSelected    = "Storage backend selected"
	LogMsgStoresOpened       = "Stores opened"

	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoppingBot          = "Stopping Discord bot..."
	LogMsgBotStopFailed        = "Discord bot stop failed"
	LogMsgFlushingStores       = "Flushing stores..."
	LogMsgFlushFailed          = "Store flush failed"
	LogMsgBackendCloseFailed   = "Storage backend close failed"
	LogMsgShutdownComplete     = "Shutdown complete"
)

// =============================================================================
// Error Messages
// =============================================================================

const (
	ErrMsgUnknownDriver     = "unknown storage driver %q"
	ErrMsgFileBackendFailed = "failed to open file backend: %w"
	ErrMsgDatabaseFailed    = "failed to open database: %w"
	ErrMsgOpenStoreFailed   = "failed to open %s store: %w"
	ErrMsgBackfillFailed    = "failed to backfill eggs: %w"
)
