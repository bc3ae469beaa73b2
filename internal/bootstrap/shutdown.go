package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"github.com/osse101/BabyEggBot_Go/internal/store"
)

// Stopper is a component that stops accepting work
type Stopper interface {
	Stop(ctx context.Context) error
}

// BotStopper closes the gateway connection
type BotStopper interface {
	Stop() error
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server  Stopper
	Bot     BotStopper
	Stores  *Stores
	Backend store.Backend
	LogFile io.Closer
}

// GracefulShutdown shuts components down in order:
// 1. HTTP server and Discord bot (stop accepting commands)
// 2. Stores (flush the final snapshots)
// 3. Storage backend and log file
//
// It returns the first store flush error; other errors are only logged.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) error {
	if c.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Bot != nil {
		slog.Info(LogMsgStoppingBot)
		if err := c.Bot.Stop(); err != nil {
			slog.Error(LogMsgBotStopFailed, "error", err)
		}
	}

	var flushErr error
	if c.Stores != nil {
		slog.Info(LogMsgFlushingStores)
		if flushErr = store.FlushAll(ctx, c.Stores.All()...); flushErr != nil {
			slog.Error(LogMsgFlushFailed, "error", flushErr)
		}
	}

	if c.Backend != nil {
		if err := c.Backend.Close(); err != nil {
			slog.Error(LogMsgBackendCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgShutdownComplete)
	if c.LogFile != nil {
		_ = c.LogFile.Close()
	}
	return flushErr
}
