package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/wisteria-bot/internal/app/service"
)

// Embed + botón "Get CAPTCHA" que se publica en el canal configurado.
func panelMessage(p service.Panel) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       p.Title,
			Description: p.Description,
			Color:       p.ColorValue,
		}},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{
					CustomID: ButtonGetCaptcha,
					Label:    "Get CAPTCHA",
					Style:    discordgo.PrimaryButton,
				},
			}},
		},
	}
}

// captchaModal arma el modal con un único input. Con showHint el código va
// como placeholder.
func captchaModal(code string, showHint bool) *discordgo.InteractionResponseData {
	input := discordgo.TextInput{
		CustomID:  FieldCaptchaInput,
		Label:     "Enter CAPTCHA",
		Style:     discordgo.TextInputShort,
		Required:  true,
		MinLength: 1,
		MaxLength: 32,
	}
	if showHint {
		input.Placeholder = code
	}
	return &discordgo.InteractionResponseData{
		CustomID: ModalCaptcha,
		Title:    "CAPTCHA Verification",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{input}},
		},
	}
}
