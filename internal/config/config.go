package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/osse101/BabyEggBot_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	DiscordToken         string        `validate:"required_unless=SkipDiscord true"`
	SkipDiscord          bool          `validate:"-"`
	BotOwnerID           string        `validate:"required,numeric"`
	StorageDriver        string        `validate:"oneof=file postgres"`
	DataDir              string        `validate:"required_if=StorageDriver file"`
	DatabaseURL          string        `validate:"required_if=StorageDriver postgres"`
	HTTPPort             int           `validate:"min=0,max=65535"`
	APIKey               string        `validate:"-"`
	PromptTimeout        time.Duration `validate:"gt=0"`
	EconomyClampNegative bool          `validate:"-"`
	LogLevel             string        `validate:"oneof=debug info warn warning error"`
	LogFormat            string        `validate:"oneof=json text"`
	LogDir               string        `validate:"-"`
	Environment          string        `validate:"required"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first if present; real environment variables win.
// skipDiscord relaxes the token requirement for tools that never connect.
func Load(skipDiscord bool) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken:  getEnv(EnvDiscordToken, ""),
		SkipDiscord:   skipDiscord,
		BotOwnerID:    getEnv(EnvBotOwnerID, domain.DefaultOwnerID),
		StorageDriver: strings.ToLower(getEnv(EnvStorageDriver, DefaultStorageDriver)),
		DataDir:       getEnv(EnvDataDir, DefaultDataDir),
		DatabaseURL:   getEnv(EnvDatabaseURL, ""),
		APIKey:        getEnv(EnvAPIKey, ""),
		LogLevel:      strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:     strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:        getEnv(EnvLogDir, DefaultLogDir),
		Environment:   getEnv(EnvEnvironment, DefaultEnvironment),
	}

	var err error
	if cfg.HTTPPort, err = getEnvAsInt(EnvHTTPPort, DefaultHTTPPort); err != nil {
		return nil, err
	}
	if cfg.PromptTimeout, err = getEnvAsDuration(EnvPromptTimeout, DefaultPromptTimeout); err != nil {
		return nil, err
	}
	if cfg.EconomyClampNegative, err = getEnvAsBool(EnvEconomyClampNegative, false); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf(ErrMsgFieldFmt, fe.Field(), fe.Tag()))
	}
	return fmt.Errorf(ErrMsgInvalidConfig, strings.Join(fields, ", "))
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInvalidValueFmt, key, raw, err)
	}
	return v, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInvalidValueFmt, key, raw, err)
	}
	return v, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf(ErrMsgInvalidValueFmt, key, raw, err)
	}
	return v, nil
}
