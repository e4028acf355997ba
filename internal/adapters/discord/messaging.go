package discord

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

// Respond manda la respuesta inicial; una interacción sólo admite una.
func (c *Ctx) Respond(resp *discordgo.InteractionResponse) error {
	err := c.respond(resp)
	if err != nil {
		var restErr *discordgo.RESTError
		if errors.As(err, &restErr) && restErr.Message != nil && restErr.Message.Code == discordgo.ErrCodeUnknownInteraction {
			c.Log.Warn("interaction expired before reply", "code", restErr.Message.Code)
		}
		return err
	}
	c.replied = true
	return nil
}

// Reply: respuesta pública en el canal.
func (c *Ctx) Reply(content string) error {
	return c.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:         content,
			AllowedMentions: &discordgo.MessageAllowedMentions{},
		},
	})
}

func (c *Ctx) ReplyEphemeral(content string) error {
	return c.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func (c *Ctx) ShowModal(data *discordgo.InteractionResponseData) error {
	return c.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: data,
	})
}

// Replied indica si ya se respondió (para no mandar el fallback dos veces).
func (c *Ctx) Replied() bool { return c.replied }
