package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

const (
	CmdSetupCaptcha    = "setupcaptcha"
	CmdSetCaptchaEmbed = "setcaptchaembed"
	CmdSendCaptcha     = "sendcaptcha"
	CmdAFK             = "afk"
	CmdSay             = "say"

	ButtonGetCaptcha  = "get_captcha"
	ModalCaptcha      = "captcha_modal"
	FieldCaptchaInput = "captcha_input"
)

var (
	permManageGuild    int64 = discordgo.PermissionManageGuild
	permManageMessages int64 = discordgo.PermissionManageMessages
	noDM                     = false
)

// Commands es a la vez lo que se registra en Discord y el schema con el que
// se validan las opciones al despachar (ver requests.go).
var Commands = []*discordgo.ApplicationCommand{
	{
		Name:                     CmdSetupCaptcha,
		Description:              "Set both the role to assign and the channel for CAPTCHA messages",
		DefaultMemberPermissions: &permManageGuild,
		DMPermission:             &noDM,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionRole,
				Name:        "role",
				Description: "The role to assign after verification",
				Required:    true,
			},
			{
				Type:         discordgo.ApplicationCommandOptionChannel,
				Name:         "channel",
				Description:  "The channel for CAPTCHA messages",
				Required:     true,
				ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText, discordgo.ChannelTypeGuildNews},
			},
		},
	},
	{
		Name:                     CmdSetCaptchaEmbed,
		Description:              "Set the title, description, and color for the CAPTCHA embed",
		DefaultMemberPermissions: &permManageGuild,
		DMPermission:             &noDM,
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "title", Description: "The title for the embed", Required: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: "description", Description: "The description for the embed", Required: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: "color", Description: "The color for the embed (hex code, e.g., #ff0000)"},
		},
	},
	{
		Name:                     CmdSendCaptcha,
		Description:              "Send the CAPTCHA panel to the configured channel",
		DefaultMemberPermissions: &permManageGuild,
		DMPermission:             &noDM,
	},
	{
		Name:         CmdAFK,
		Description:  "Set your AFK status",
		DMPermission: &noDM,
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "message", Description: "Optional message to display while you are AFK"},
		},
	},
	{
		Name:                     CmdSay,
		Description:              "Make the bot send a message with the specified content",
		DefaultMemberPermissions: &permManageMessages,
		DMPermission:             &noDM,
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "message", Description: "The message you want the bot to say", Required: true},
			{
				Type:         discordgo.ApplicationCommandOptionChannel,
				Name:         "channel",
				Description:  "The channel where the bot should send the message (optional)",
				ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText, discordgo.ChannelTypeGuildNews},
			},
		},
	},
}

func commandByName(name string) *discordgo.ApplicationCommand {
	for _, c := range Commands {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Register reemplaza el set completo de comandos (bulk overwrite, idempotente).
// guildID vacío = comandos globales.
func (r *Router) Register(ctx context.Context) error {
	done := step(r.log, "commands.register")
	defer done()

	cmds, err := r.s.ApplicationCommandBulkOverwrite(r.appID, r.guildID, Commands, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("bulk overwrite commands: %w", err)
	}
	r.log.Info("commands registered", "count", len(cmds), "guild", r.guildID)
	return nil
}
