package di

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
	channelRepo "github.com/teleole/channel-manager-bot/internal/modules/channel/repository"
	channelService "github.com/teleole/channel-manager-bot/internal/modules/channel/service"
	"github.com/teleole/channel-manager-bot/internal/modules/conversation"
	"github.com/teleole/channel-manager-bot/internal/modules/media"
	"github.com/teleole/channel-manager-bot/internal/modules/post"
	"github.com/teleole/channel-manager-bot/internal/modules/watermark"
	"github.com/teleole/channel-manager-bot/internal/shared/config"
	httpServer "github.com/teleole/channel-manager-bot/internal/transport/http"
	telegramHandler "github.com/teleole/channel-manager-bot/internal/transport/telegram"
)

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Channel Repository
	do.Provide(injector, func(i do.Injector) (channelRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := channelRepo.NewFileStorage(cfg.StorageFile)
		if err != nil {
			return nil, oops.With("storage_file", cfg.StorageFile, "context", "failed to initialize channel repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Channel Service
	do.Provide(injector, func(i do.Injector) (*channelService.Service, error) {
		repo := do.MustInvoke[channelRepo.Repository](i)
		return channelService.New(repo), nil
	})

	// Register Watermark Executor
	do.Provide(injector, func(i do.Injector) (*watermark.Executor, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return watermark.NewExecutor(cfg.FFmpegPath), nil
	})

	// Register Conversation Manager
	do.Provide(injector, func(i do.Injector) (*conversation.Manager, error) {
		return conversation.NewManager(), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		registry := do.MustInvoke[*channelService.Service](i)
		server := httpServer.New(cfg, registry)
		server.SetLogger(slog.Default())
		return server, nil
	})

	// Register Bot. The downloader, orchestrator, and handler all need
	// the live bot instance, so they are wired here once it exists.
	do.Provide(injector, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)
		registry := do.MustInvoke[*channelService.Service](i)
		executor := do.MustInvoke[*watermark.Executor](i)
		conversations := do.MustInvoke[*conversation.Manager](i)

		var handler *telegramHandler.Handler
		opts := []bot.Option{
			bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
				handler.HandleUpdate(ctx, b, update)
			}),
		}

		b, err := bot.New(cfg.TelegramBotToken, opts...)
		if err != nil {
			return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
		}

		downloader, err := media.NewDownloader(b, cfg.TempDir, cfg.MaxDownloadBytes())
		if err != nil {
			return nil, oops.With("context", "failed to create downloader").Wrap(err)
		}

		orchestrator := post.NewOrchestrator(b, registry, downloader, executor)
		handler = telegramHandler.New(cfg, registry, orchestrator, conversations, downloader)
		handler.RegisterCommands(b)

		return b, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(injector do.Injector) error {
	ctx := context.Background()

	if b, err := do.Invoke[*bot.Bot](injector); err == nil && b != nil {
		b.Close(ctx)
	}

	return nil
}
