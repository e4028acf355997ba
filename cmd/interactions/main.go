// Lambda detrás de API Gateway (HTTP API) que recibe las interacciones de
// Discord por webhook. Sin gateway: el tracker AFK por mensajes no corre acá.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/bwmarrin/discordgo"

	discordrouter "github.com/jose-valero/wisteria-bot/internal/adapters/discord"
	"github.com/jose-valero/wisteria-bot/internal/adapters/httpinteractions"
	"github.com/jose-valero/wisteria-bot/internal/app/service"
	"github.com/jose-valero/wisteria-bot/internal/infra/config"
	"github.com/jose-valero/wisteria-bot/internal/infra/logging"
	"github.com/jose-valero/wisteria-bot/internal/infra/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(os.Stderr, slog.LevelInfo).Error("config", logging.Err(err))
		os.Exit(1)
	}
	log := logging.New(os.Stderr, cfg.LogLevel)
	logging.BridgeDiscordgo(log)

	// cada invocación puede caer en otra instancia: memoria no sirve
	if cfg.DatabaseURL == "" || cfg.PublicKey == "" {
		log.Error("DATABASE_URL and DISCORD_PUBLIC_KEY are required")
		os.Exit(1)
	}

	kv, closeKV, err := storage.OpenKV(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Error("open store", logging.Err(err))
		os.Exit(1)
	}
	defer closeKV()
	verifySvc, awaySvc := service.NewServices(kv)

	// sólo REST, nunca se abre el websocket
	s, err := discordgo.New(cfg.BotAuth())
	if err != nil {
		log.Error("discord session", logging.Err(err))
		os.Exit(1)
	}
	s.LogLevel = logging.DiscordgoLevel(cfg.LogLevel)
	r := discordrouter.NewRouter(s, nil, log, discordrouter.Config{
		AppID:           cfg.ClientID,
		GuildID:         cfg.DiscordGuild,
		ShowCaptchaHint: cfg.ShowCaptchaHint,
	}, verifySvc, awaySvc)

	web, err := httpinteractions.New(cfg.PublicKey, r, log)
	if err != nil {
		log.Error("interactions endpoint", logging.Err(err))
		os.Exit(1)
	}
	lambda.Start(web.HandleAPIGateway)
}
