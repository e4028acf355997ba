package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DiscordToken string `env:"BOT_TOKEN,required,notEmpty"`
	ClientID     string `env:"CLIENT_ID,required,notEmpty"`
	// vacío = comandos globales; con guild se registran al instante (dev)
	DiscordGuild string `env:"DISCORD_GUILD_ID"`

	DatabaseURL string `env:"DATABASE_URL"` // vacío = store en memoria

	HTTPAddr  string `env:"HTTP_ADDR"`
	PublicKey string `env:"DISCORD_PUBLIC_KEY"`

	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	ShowCaptchaHint bool   `env:"CAPTCHA_SHOW_HINT" envDefault:"true"`
	PresenceText    string `env:"PRESENCE_TEXT" envDefault:"Wisteria"`
	PresenceStatus  string `env:"PRESENCE_STATUS" envDefault:"dnd"`
}

// Load lee el entorno (el .env ya tiene que estar cargado por main).
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.HTTPAddr != "" && cfg.PublicKey == "" {
		return Config{}, fmt.Errorf("config: DISCORD_PUBLIC_KEY is required when HTTP_ADDR is set")
	}
	return cfg, nil
}

// BotAuth devuelve el token con el prefijo "Bot " que espera discordgo.
func (c Config) BotAuth() string {
	auth := strings.TrimSpace(c.DiscordToken)
	if !strings.HasPrefix(strings.ToLower(auth), "bot ") {
		auth = "Bot " + auth
	}
	return auth
}
