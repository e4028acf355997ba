package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	discordrouter "github.com/jose-valero/wisteria-bot/internal/adapters/discord"
	"github.com/jose-valero/wisteria-bot/internal/adapters/httpinteractions"
	"github.com/jose-valero/wisteria-bot/internal/app/service"
	"github.com/jose-valero/wisteria-bot/internal/infra/config"
	"github.com/jose-valero/wisteria-bot/internal/infra/logging"
	"github.com/jose-valero/wisteria-bot/internal/infra/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.New(os.Stderr, slog.LevelInfo).Error("config", logging.Err(err))
		os.Exit(1)
	}
	log := logging.New(os.Stderr, cfg.LogLevel)
	logging.BridgeDiscordgo(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Store: Postgres si hay DATABASE_URL, si no memoria
	kv, closeKV, err := storage.OpenKV(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("open store", logging.Err(err))
		os.Exit(1)
	}
	defer closeKV()
	if cfg.DatabaseURL != "" {
		log.Info("store ready", "backend", "postgres")
	} else {
		log.Info("store ready", "backend", "memory")
	}

	verifySvc, awaySvc := service.NewServices(kv)

	s, err := discordgo.New(cfg.BotAuth())
	if err != nil {
		log.Error("discord session", logging.Err(err))
		os.Exit(1)
	}
	s.LogLevel = logging.DiscordgoLevel(cfg.LogLevel)
	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent |
		discordgo.IntentsGuildMembers

	r := discordrouter.NewRouter(s, s.State, log, discordrouter.Config{
		AppID:           cfg.ClientID,
		GuildID:         cfg.DiscordGuild,
		ShowCaptchaHint: cfg.ShowCaptchaHint,
		Presence:        discordrouter.Presence{Text: cfg.PresenceText, Status: cfg.PresenceStatus},
	}, verifySvc, awaySvc)
	r.Handlers()

	if err := s.Open(); err != nil {
		log.Error("discord login", logging.Err(err))
		os.Exit(1)
	}
	defer s.Close()

	// si falla el registro seguimos con los comandos que ya estaban
	if err := r.Register(ctx); err != nil {
		log.Error("register commands", logging.Err(err))
	}

	// endpoint HTTP de interacciones (opcional)
	var web *httpinteractions.Server
	if cfg.HTTPAddr != "" {
		web, err = httpinteractions.New(cfg.PublicKey, r, log)
		if err != nil {
			log.Error("interactions endpoint", logging.Err(err))
			os.Exit(1)
		}
		go func() {
			if err := web.Start(cfg.HTTPAddr); err != nil {
				log.Error("interactions endpoint stopped", logging.Err(err))
			}
		}()
	}

	<-ctx.Done()
	log.Info("shutting down")

	if web != nil {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := web.Shutdown(sctx); err != nil {
			log.Warn("http shutdown", logging.Err(err))
		}
	}
}
