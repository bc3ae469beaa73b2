package bootstrap

import (
	"io"
	"log/slog"

	"github.com/osse101/BabyEggBot_Go/internal/config"
	"github.com/osse101/BabyEggBot_Go/internal/logger"
)

// SetupLogger initializes the application logger with stdout and a rotated
// file under cfg.LogDir. The returned closer must be closed on shutdown.
func SetupLogger(cfg *config.Config, version string) io.Closer {
	// Source locations only in dev
	addSource := cfg.Environment == logger.EnvironmentDev

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		version,
		cfg.Environment,
		addSource,
	)
	loggerConfig.Dir = cfg.LogDir

	closer := logger.InitLogger(loggerConfig)

	slog.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel(), "dir", cfg.LogDir)
	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", version)

	slog.Debug(LogMsgConfigLoaded,
		"storage_driver", cfg.StorageDriver,
		"data_dir", cfg.DataDir,
		"http_port", cfg.HTTPPort,
		"prompt_timeout", cfg.PromptTimeout,
		"clamp_negative", cfg.EconomyClampNegative)

	return closer
}
