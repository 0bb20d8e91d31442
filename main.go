package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"harulog/internal/apiclient"
	"harulog/internal/cli"
	"harulog/internal/config"
	"harulog/internal/journal"
	"harulog/internal/notify"
	"harulog/internal/prefs"
	"harulog/internal/reminder"
	"harulog/internal/session"
)

func main() {
	// Optional .env for local development overrides.
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfgPath := os.Getenv("HARULOG_CONFIG")
	if cfgPath == "" {
		cfgPath = "configs/config.yml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	store, err := prefs.Open(cfg.Prefs.Path, logger)
	if err != nil {
		logger.Fatal("Failed to open preference store", zap.Error(err))
	}
	defer store.Close()

	sess := session.New(cfg.API.AccessToken, logger)
	api := apiclient.NewClient(cfg.API.URL, sess, logger)

	// User-facing messages go to the terminal, plus Telegram when the
	// reminder bot is configured.
	terminalSink := notify.NewWriterSink(os.Stdout)
	sinks := notify.Fanout{terminalSink}
	if cfg.Reminder.Enabled {
		telegramSink, err := notify.NewTelegramSink(cfg.Reminder.TelegramBotToken, cfg.Reminder.TelegramChatID, logger)
		if err != nil {
			logger.Warn("Failed to initialize Telegram sink, continuing without it", zap.Error(err))
		} else if telegramSink != nil {
			sinks = append(sinks, telegramSink)
		}
	}

	// Context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg.Reminder.Enabled {
		go reminder.NewWorker(store, sinks, logger).Run(ctx)
	}

	cliLog := logrus.New()
	cliLog.SetLevel(logrus.WarnLevel)

	app := &cli.App{
		API:      api,
		Prefs:    store,
		Sink:     sinks,
		Log:      cliLog,
		Zap:      logger,
		Out:      os.Stdout,
		In:       os.Stdin,
		Unlocked: journal.NewUnlockSet(),
		Now:      time.Now,
	}

	root := cli.NewRootCommand(app)
	if err := root.ExecuteContext(ctx); err != nil {
		cliLog.Error(err)
		os.Exit(1)
	}
}
