package store

import "os"

// File backend settings
const (
	FileExtension   = ".json"
	TempFilePattern = ".*.tmp"

	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// SQL used by the postgres backend
const (
	SQLSelectSnapshot = `SELECT data FROM store_snapshots WHERE name = $1`

	SQLUpsertSnapshot = `
		INSERT INTO store_snapshots (name, data, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (name) DO UPDATE
		SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`
)

// Error message formats
const (
	ErrMsgLoadFailed   = "failed to load store %s: %w"
	ErrMsgDecodeFailed = "failed to decode store %s: %w"
	ErrMsgEncodeFailed = "failed to encode store %s: %w"
	ErrMsgSaveFailed   = "failed to save store %s: %w"
)

// Log messages
const (
	LogMsgStoreLoaded = "Store loaded"
	LogMsgSaveFailed  = "Failed to save store snapshot"
	LogMsgFlushFailed = "Failed to flush store"
)
