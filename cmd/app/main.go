package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/BabyEggBot_Go/internal/bootstrap"
	"github.com/osse101/BabyEggBot_Go/internal/clock"
	"github.com/osse101/BabyEggBot_Go/internal/command"
	"github.com/osse101/BabyEggBot_Go/internal/config"
	"github.com/osse101/BabyEggBot_Go/internal/discord"
	"github.com/osse101/BabyEggBot_Go/internal/handler"
	"github.com/osse101/BabyEggBot_Go/internal/prompt"
	"github.com/osse101/BabyEggBot_Go/internal/server"
)

//go:generate go run github.com/swaggo/swag/cmd/swag init --parseInternal -g cmd/app/main.go -d ../../ -o ../../docs

// @title BabyEggBot API
// @version 1.0
// @description Read-only introspection of eggs, balances, inventories and marriages.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	httpOnly := flag.Bool("http-only", false, "serve the introspection API without connecting to Discord")
	flag.Parse()

	cfg, err := config.Load(*httpOnly)
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile := bootstrap.SetupLogger(cfg, version)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Failing to read or write the snapshots is the only fatal error
	backend, err := bootstrap.OpenBackend(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open storage", "error", err)
		os.Exit(1)
	}
	stores, err := bootstrap.OpenStores(ctx, backend)
	if err != nil {
		slog.Error("Failed to load stores", "error", err)
		os.Exit(1)
	}

	clk := clock.NewRealClock()
	services, err := bootstrap.InitializeServices(ctx, cfg, stores, clk)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	components := bootstrap.ShutdownComponents{
		Stores:  stores,
		Backend: backend,
		LogFile: logFile,
	}

	var botConn handler.Connector
	if !cfg.SkipDiscord {
		bot, err := discord.New(discord.Config{Token: cfg.DiscordToken})
		if err != nil {
			slog.Error("Failed to create bot", "error", err)
			os.Exit(1)
		}

		broker := prompt.NewBroker()
		router := command.NewRouter(command.Deps{
			Eggs:          services.Eggs,
			Marriages:     services.Marriages,
			Ledger:        services.Ledger,
			Inventory:     services.Inventory,
			Prompts:       broker,
			Replier:       bot.Replier(),
			PromptTimeout: cfg.PromptTimeout,
		})
		bot.Attach(router, broker)
		slog.Info("Commands registered", "count", router.Commands())

		if err := bot.Start(ctx); err != nil {
			slog.Error("Bot failed", "error", err)
			os.Exit(1)
		}
		components.Bot = bot
		botConn = bot
	}

	srv := server.NewServer(cfg.HTTPPort, cfg.APIKey, server.Deps{
		Backend:   backend,
		Bot:       botConn,
		Eggs:      services.Eggs,
		Ledger:    services.Ledger,
		Inventory: services.Inventory,
		Marriages: services.Marriages,
		Clock:     clk,
	})
	components.Server = srv

	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownPeriod)
	defer cancel()
	if err := bootstrap.GracefulShutdown(shutdownCtx, components); err != nil {
		os.Exit(1)
	}
}
