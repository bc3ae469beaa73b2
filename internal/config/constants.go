package config

import "time"

// Storage drivers
const (
	StorageDriverFile     = "file"
	StorageDriverPostgres = "postgres"
)

// Defaults
const (
	DefaultStorageDriver = StorageDriverFile
	DefaultDataDir       = "."
	DefaultHTTPPort      = 8082
	DefaultPromptTimeout = 15 * time.Second
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultLogDir        = "logs"
	DefaultEnvironment   = "dev"
)

// Environment variable names
const (
	EnvDiscordToken         = "DISCORD_TOKEN"
	EnvBotOwnerID           = "BOT_OWNER_ID"
	EnvStorageDriver        = "STORAGE_DRIVER"
	EnvDataDir              = "DATA_DIR"
	EnvDatabaseURL          = "DATABASE_URL"
	EnvHTTPPort             = "HTTP_PORT"
	EnvAPIKey               = "API_KEY"
	EnvPromptTimeout        = "PROMPT_TIMEOUT"
	EnvEconomyClampNegative = "ECONOMY_CLAMP_NEGATIVE"
	EnvLogLevel             = "LOG_LEVEL"
	EnvLogFormat            = "LOG_FORMAT"
	EnvLogDir               = "LOG_DIR"
	EnvEnvironment          = "ENVIRONMENT"
)

// Error messages
const (
	ErrMsgInvalidValueFmt = "invalid %s value %q: %w"
	ErrMsgInvalidConfig   = "invalid configuration: %s"
	ErrMsgFieldFmt        = "%s failed %q"
)
