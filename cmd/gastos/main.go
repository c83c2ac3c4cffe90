package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"gastos/internal/bot"
	"gastos/internal/config"
	"gastos/internal/core"
	"gastos/internal/ledger"
	lgoogle "gastos/internal/ledger/google"
	lmemory "gastos/internal/ledger/memory"
	lsqlite "gastos/internal/ledger/sqlite"
	"gastos/internal/scheduler"
	"gastos/internal/services"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		store    ledger.Store
		archiver ledger.Archiver
	)
	switch cfg.DataBackend {
	case "sheets":
		creds, err := cfg.ServiceAccount()
		if err != nil {
			logger.Error("Failed to load service account credentials", "error", err)
			os.Exit(1)
		}
		cli, err := lgoogle.New(ctx, cfg.GoogleSpreadsheetID, cfg.GoogleSheetName, creds)
		if err != nil {
			logger.Error("Failed to initialize Google Sheets ledger", "error", err)
			os.Exit(1)
		}
		store, archiver = cli, cli
	case "sqlite":
		repo, err := lsqlite.New(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize SQLite ledger", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		defer repo.Close()
		store, archiver = repo, repo
	default:
		mem := lmemory.New()
		store, archiver = mem, mem
	}
	logger.Info("Ledger backend initialized", "backend", cfg.DataBackend)

	pair := core.Pair{A: cfg.ParticipantA, B: cfg.ParticipantB}
	svc := services.NewLedgerService(store, archiver, pair)

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		logger.Error("Failed to initialize Telegram bot", "error", err)
		os.Exit(1)
	}
	handler := bot.NewHandler(api, svc, cfg.ReminderChatID)
	logger.Info("Bot authorized", "username", api.Self.UserName)

	loc, err := cfg.Location()
	if err != nil {
		logger.Error("Failed to load timezone", "error", err, "timezone", cfg.Timezone)
		os.Exit(1)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		u := tgbotapi.NewUpdate(0)
		u.Timeout = 60
		updates := api.GetUpdatesChan(u)
		for {
			select {
			case <-ctx.Done():
				api.StopReceivingUpdates()
				return ctx.Err()
			case upd := <-updates:
				handler.HandleUpdate(ctx, upd)
			}
		}
	})

	g.Go(func() error {
		daily := scheduler.Daily{
			Hour:     cfg.ReminderHour,
			Location: loc,
			Fn: func(now time.Time) {
				msg, due, err := svc.MonthlyReminder(ctx, now)
				if err != nil {
					logger.Error("Monthly reminder failed", "error", err)
					return
				}
				if !due {
					return
				}
				if err := handler.SendReminder(ctx, msg); err != nil {
					logger.Error("Failed to deliver monthly reminder", "error", err)
				}
			},
		}
		return daily.Run(ctx)
	})

	logger.Info("gastos bot running", "backend", cfg.DataBackend, "reminder_hour", cfg.ReminderHour)
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Bot stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Bot stopped gracefully")
}
