package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 1

	// DefaultMaxConnections caps the pool; snapshot writes are serialized per store
	DefaultMaxConnections = 4

	DefaultMaxConnIdleTime = 5 * time.Minute
	DefaultMaxConnLifetime = 30 * time.Minute
)

// Migration settings
const (
	MigrationDialect = "postgres"
	MigrationsDir    = "migrations"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
