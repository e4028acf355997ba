package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// Responder entrega la respuesta de la interacción. Por gateway es
// InteractionRespond; por HTTP se escribe en el body.
type Responder func(resp *discordgo.InteractionResponse) error

type Ctx struct {
	Log     *slog.Logger
	Session Session
	Event   *discordgo.InteractionCreate
	GuildID string
	UserID  string

	respond Responder
	replied bool
}

type HandlerFunc func(ctx context.Context, c *Ctx) error

// routeKey: tipo de interacción + nombre de comando / custom_id.
type routeKey struct {
	kind discordgo.InteractionType
	id   string
}

func interactionID(ic *discordgo.InteractionCreate) string {
	switch ic.Type {
	case discordgo.InteractionApplicationCommand:
		return ic.ApplicationCommandData().Name
	case discordgo.InteractionMessageComponent:
		return ic.MessageComponentData().CustomID
	case discordgo.InteractionModalSubmit:
		return ic.ModalSubmitData().CustomID
	}
	return ""
}

func interactionUser(ic *discordgo.InteractionCreate) *discordgo.User {
	if ic.Member != nil && ic.Member.User != nil {
		return ic.Member.User
	}
	return ic.User
}
