package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/danielhkuo/lookout/avatar"
	"github.com/danielhkuo/lookout/cards"
	"github.com/danielhkuo/lookout/cliparse"
	"github.com/danielhkuo/lookout/reconcile"
	"github.com/danielhkuo/lookout/router"
	"github.com/danielhkuo/lookout/store"
)

const statusInterval = 5 * time.Minute

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the record store (a missing or damaged blob loads as empty)
	st := store.Open(cfg.StorePath)
	slog.Info("Record store ready", "path", cfg.StorePath, "records", len(st.Records()))

	// Connect to Discord
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		slog.Error("discord session failed", "error", err)
		os.Exit(1)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	svc := cards.NewService(session, cfg.IntakeChannelID)
	rec := reconcile.New(st, svc)
	av := avatar.New()

	bot := cards.NewBot(svc, rec, st, av, cfg.GuildID)
	bot.Register(session)

	if err := session.Open(); err != nil {
		slog.Error("discord connection failed", "error", err)
		os.Exit(1)
	}
	defer session.Close()

	if err := bot.RegisterCommands(session); err != nil {
		slog.Error("command registration failed", "error", err)
	}

	// Status display sync, if configured
	if cfg.StatusChannelID != "" && cfg.StatusText != "" {
		go statusLoop(svc, cfg.StatusChannelID, cfg.StatusText)
	}

	// Create router
	mux := router.NewRouter(st, rec, av, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// statusLoop reconciles the status display immediately and then on a ticker.
// Each pass is idempotent; failures are logged and retried next tick.
func statusLoop(svc *cards.Service, channelID, text string) {
	ticker := time.NewTicker(statusInterval)
	defer ticker.Stop()
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := svc.ReconcileStatus(ctx, channelID, text); err != nil {
			slog.Error("status reconciliation failed", "error", err)
		}
		cancel()
		<-ticker.C
	}
}
