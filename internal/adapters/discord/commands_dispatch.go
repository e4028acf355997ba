// handlers de los slash commands: decodifican el request tipado y llaman al servicio
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

func (r *Router) handleSetupCaptcha(ctx context.Context, c *Ctx) error {
	req, err := decodeSetupCaptcha(c.Event.ApplicationCommandData())
	if err != nil {
		return err
	}
	if err := r.verify.Setup(ctx, c.GuildID, req.RoleID, req.ChannelID); err != nil {
		return fmt.Errorf("save verification config: %w", err)
	}
	c.Log.Info("verification configured", "role", req.RoleID, "channel", req.ChannelID)
	return c.Reply(fmt.Sprintf("Verification role set to **%s** and CAPTCHA channel set to **%s**.", req.RoleName, req.ChannelName))
}

func (r *Router) handleSetCaptchaEmbed(ctx context.Context, c *Ctx) error {
	req, err := decodeSetEmbed(c.Event.ApplicationCommandData())
	if err != nil {
		return err
	}
	// con color inválido título y descripción igual quedan guardados
	if _, err := r.verify.SetEmbed(ctx, c.GuildID, req.Title, req.Description, req.Color); err != nil {
		return err
	}

	msg := fmt.Sprintf("Embed settings updated: **Title**: %s, **Description**: %s", req.Title, req.Description)
	if req.Color != nil {
		msg += fmt.Sprintf(", **Color**: %s", *req.Color)
	}
	return c.Reply(msg)
}

func (r *Router) handleSendCaptcha(ctx context.Context, c *Ctx) error {
	panel, err := r.verify.PanelFor(ctx, c.GuildID)
	if err != nil {
		return err
	}
	if _, err := r.s.ChannelMessageSendComplex(panel.ChannelID, panelMessage(panel), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send captcha panel to %s: %w", panel.ChannelID, err)
	}
	return c.Reply("CAPTCHA panel sent to the channel.")
}

func (r *Router) handleAFK(ctx context.Context, c *Ctx) error {
	req, err := decodeAFK(c.Event.ApplicationCommandData())
	if err != nil {
		return err
	}
	st, err := r.away.SetAway(ctx, c.UserID, req.Message)
	if err != nil {
		return fmt.Errorf("set away: %w", err)
	}
	return c.Reply("You are now AFK: " + st.Message)
}

func (r *Router) handleSay(ctx context.Context, c *Ctx) error {
	req, err := decodeSay(c.Event.ApplicationCommandData())
	if err != nil {
		return err
	}
	target := req.ChannelID
	if target == "" {
		target = c.Event.ChannelID
	}
	if _, err := r.s.ChannelMessageSend(target, req.Message, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("say in %s: %w", target, err)
	}
	return c.ReplyEphemeral("Message sent!")
}
