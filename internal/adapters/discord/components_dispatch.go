package discord

import (
	"context"
	"fmt"
)

// botón del panel: genera el código y abre el modal
func (r *Router) handleGetCaptcha(ctx context.Context, c *Ctx) error {
	ch, err := r.verify.IssueChallenge(ctx, c.UserID)
	if err != nil {
		return fmt.Errorf("issue challenge: %w", err)
	}
	return c.ShowModal(captchaModal(ch.Code, r.showHint))
}

func (r *Router) handleCaptchaSubmit(ctx context.Context, c *Ctx) error {
	input, _ := modalValue(c.Event.ModalSubmitData(), FieldCaptchaInput)

	roleName, err := r.verify.Verify(ctx, c.GuildID, c.UserID, input, r.roles)
	if err != nil {
		return err
	}
	c.Log.Info("user verified", "role", roleName)
	return c.ReplyEphemeral(fmt.Sprintf("CAPTCHA verified successfully! You have been assigned the role: **%s**.", roleName))
}
