package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/wisteria-bot/internal/infra/logging"
)

// HandleMessage cubre el tracker AFK: el autor vuelve, los mencionados avisan.
func (r *Router) HandleMessage(ctx context.Context, m *discordgo.Message) {
	if m == nil || m.Author == nil || m.Author.Bot {
		return
	}
	log := r.log.With("user", m.Author.ID, "channel", m.ChannelID)

	st, back, err := r.away.Return(ctx, m.Author.ID)
	if err != nil {
		log.Error("clear away status", logging.Err(err))
	}
	if back {
		r.replyTo(ctx, log, m, "Welcome back! You were AFK: "+st.Message)
	}

	if len(m.Mentions) == 0 {
		return
	}
	ids := make([]string, 0, len(m.Mentions))
	names := make(map[string]string, len(m.Mentions))
	for _, u := range m.Mentions {
		if u == nil {
			continue
		}
		ids = append(ids, u.ID)
		names[u.ID] = u.Username
	}
	away, err := r.away.Mentioned(ctx, ids)
	if err != nil {
		log.Error("lookup mentioned away statuses", logging.Err(err))
		return
	}
	for _, a := range away {
		r.replyTo(ctx, log, m, fmt.Sprintf("%s is currently AFK: %s", names[a.UserID], a.Message))
	}
}

func (r *Router) replyTo(ctx context.Context, log *slog.Logger, m *discordgo.Message, content string) {
	if _, err := r.s.ChannelMessageSendReply(m.ChannelID, content, m.Reference(), discordgo.WithContext(ctx)); err != nil {
		log.Error("message reply failed", logging.Err(err))
	}
}
