package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/SMCNetwolf/LLMGame/internal/ai"
	"github.com/SMCNetwolf/LLMGame/internal/character"
	"github.com/SMCNetwolf/LLMGame/internal/config"
	"github.com/SMCNetwolf/LLMGame/internal/database"
	"github.com/SMCNetwolf/LLMGame/internal/database/postgres"
	"github.com/SMCNetwolf/LLMGame/internal/database/schema"
	"github.com/SMCNetwolf/LLMGame/internal/discord"
	"github.com/SMCNetwolf/LLMGame/internal/engine"
	"github.com/SMCNetwolf/LLMGame/internal/event"
	"github.com/SMCNetwolf/LLMGame/internal/handler"
	"github.com/SMCNetwolf/LLMGame/internal/inventory"
	"github.com/SMCNetwolf/LLMGame/internal/item"
	"github.com/SMCNetwolf/LLMGame/internal/logger"
	"github.com/SMCNetwolf/LLMGame/internal/metrics"
	"github.com/SMCNetwolf/LLMGame/internal/quest"
	"github.com/SMCNetwolf/LLMGame/internal/safety"
	"github.com/SMCNetwolf/LLMGame/internal/server"
	"github.com/SMCNetwolf/LLMGame/internal/world"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	if err := run(cfg); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	// Database
	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema.SchemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	slog.Info("Database schema applied")

	users := postgres.NewUserRepository(pool)
	characters := postgres.NewCharacterRepository(pool)
	states := postgres.NewGameStateRepository(pool)
	media := postgres.NewMediaRepository(pool)

	// World content
	registry, err := buildWorld(cfg)
	if err != nil {
		return err
	}

	// Narrative provider
	aiClient := buildAIClient(cfg)

	// Events and metrics
	bus, err := buildEventBus(cfg)
	if err != nil {
		return err
	}
	metrics.NewEventMetricsCollector().Register(bus)

	// Game services
	eng := engine.New(registry, quest.DefaultCatalog(registry), inventory.NewLedger(registry.Items()), safety.NewFilter(), aiClient)
	eng.SetEventBus(bus)

	svc := character.NewService(characters, states, registry, eng)
	svc.SetEventBus(bus)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, server.Deps{
		DBPool:    pool,
		Users:     users,
		Media:     media,
		Character: svc,
		Engine:    eng,
		AI:        aiClient,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// Optional chat relay
	if cfg.DiscordToken != "" {
		bot, err := discord.New(discord.Config{
			Token:  cfg.DiscordToken,
			APIURL: fmt.Sprintf("http://localhost:%d", cfg.Port),
			APIKey: cfg.APIKey,
			Prefix: cfg.DiscordPrefix,
		})
		if err != nil {
			return err
		}
		if err := bot.Start(); err != nil {
			return err
		}
		defer bot.Stop()
		slog.Info("Discord bot started", "prefix", cfg.DiscordPrefix)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Stop(shutdownCtx)
}

// setupLogger configures structured logging to stdout.
func setupLogger(cfg *config.Config) {
	lc := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, "llmgame", handler.Version, cfg.Environment, false)

	opts := &slog.HandlerOptions{Level: lc.LogLevel(), AddSource: lc.AddSource}
	var h slog.Handler
	if lc.IsJSON() {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(h.WithAttrs(lc.BaseAttributes())))
}

// buildWorld assembles the location registry, honoring an item catalog
// override when one is configured.
func buildWorld(cfg *config.Config) (*world.Registry, error) {
	if cfg.ItemsConfigPath == "" {
		return world.DefaultRegistry(), nil
	}

	items, err := item.Load(cfg.ItemsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load item catalog: %w", err)
	}
	slog.Info("Loaded item catalog override", "path", cfg.ItemsConfigPath, "items", items.Len())

	wc := world.DefaultConfig()
	wc.Items = items
	return world.NewRegistry(wc)
}

// buildAIClient picks the narrative provider. Missing credentials fall
// back to a disabled client so the game stays playable on canned text.
func buildAIClient(cfg *config.Config) ai.Client {
	if cfg.OpenAIKey == "" {
		slog.Warn("OPENAI_API_KEY not set, narrative generation disabled")
		return ai.NewDisabledClient()
	}

	client, err := ai.NewOpenAIClient(ai.OpenAIConfig{
		APIKey:      cfg.OpenAIKey,
		BaseURL:     cfg.OpenAIBaseURL,
		TextModel:   cfg.TextModel,
		ImageModel:  cfg.ImageModel,
		SpeechModel: cfg.SpeechModel,
	})
	if err != nil {
		slog.Warn("Narrative provider unavailable", "error", err)
		return ai.NewDisabledClient()
	}
	return ai.NewCachedClient(client)
}

// buildEventBus wraps the in-memory bus with retries and a dead letter
// file under the log directory.
func buildEventBus(cfg *config.Config) (event.Bus, error) {
	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		return nil, err
	}

	deadLetter, err := event.NewDeadLetterWriter(filepath.Join(cfg.LogDir, "events_dead_letter.jsonl"))
	if err != nil {
		return nil, err
	}

	return event.NewResilientPublisher(event.NewMemoryBus(), event.DefaultResilientConfig(deadLetter)), nil
}
