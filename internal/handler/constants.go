package handler

import "time"

// Health statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// ReadinessTimeout bounds the backend ping in /readyz
const ReadinessTimeout = 2 * time.Second

// URL parameters
const (
	ParamUserID = "userID"
)

// Response messages
const (
	ErrMsgStorageUnavailable = "storage backend unreachable"
	ErrMsgDiscordNotReady    = "discord gateway not connected"
	ErrMsgMissingUserID      = "user id is required"
	ErrMsgNoEgg              = "user has no egg"
)

// Log messages
const (
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
)

const headerContentType = "Content-Type"
const contentTypeJSON = "application/json"
