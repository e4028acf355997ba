package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/lmittmann/tint"
)

// New arma el logger del bot (tint, con source) y lo deja como default.
func New(w io.Writer, level slog.Level) *slog.Logger {
	l := slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		AddSource:  true,
		TimeFormat: time.DateTime,
	}))
	slog.SetDefault(l)
	return l
}

var discordgoLevels = map[int]slog.Level{
	discordgo.LogDebug:         slog.LevelDebug,
	discordgo.LogInformational: slog.LevelInfo,
	discordgo.LogWarning:       slog.LevelWarn,
	discordgo.LogError:         slog.LevelError,
}

// BridgeDiscordgo redirige el logger interno de discordgo a slog.
func BridgeDiscordgo(l *slog.Logger) {
	discordgo.Logger = DiscordgoLogger(l)
}

func DiscordgoLogger(l *slog.Logger) func(msgL, caller int, format string, a ...interface{}) {
	l = l.With("logger", "discordgo")
	return func(msgL, _ int, format string, a ...interface{}) {
		level, ok := discordgoLevels[msgL]
		if !ok {
			level = slog.LevelInfo
		}
		l.Log(context.Background(), level, strings.ReplaceAll(fmt.Sprintf(format, a...), "\n", " "))
	}
}

// Err es un atajo para loguear errores con el formato de tint.
func Err(err error) slog.Attr { return tint.Err(err) }

// DiscordgoLevel traduce el nivel de slog al LogLevel de la sesión, para que
// discordgo no descarte mensajes antes de llegar al bridge.
func DiscordgoLevel(level slog.Level) int {
	switch {
	case level <= slog.LevelDebug:
		return discordgo.LogDebug
	case level <= slog.LevelInfo:
		return discordgo.LogInformational
	case level <= slog.LevelWarn:
		return discordgo.LogWarning
	default:
		return discordgo.LogError
	}
}
