package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

var errBadOptions = errors.New("invalid command options")

// Requests tipados: las opciones se decodifican una sola vez, acá.

type SetupCaptchaRequest struct {
	RoleID      string
	RoleName    string
	ChannelID   string
	ChannelName string
}

type SetEmbedRequest struct {
	Title       string
	Description string
	Color       *string
}

type AFKRequest struct {
	Message string
}

type SayRequest struct {
	Message   string
	ChannelID string // vacío = canal donde se invocó
}

type options map[string]*discordgo.ApplicationCommandInteractionDataOption

// decodeOptions valida las opciones recibidas contra la definición del comando
// en Commands: tipos iguales, requeridas presentes, nada desconocido.
func decodeOptions(data discordgo.ApplicationCommandInteractionData) (options, error) {
	def := commandByName(data.Name)
	if def == nil {
		return nil, fmt.Errorf("%w: unknown command %q", errBadOptions, data.Name)
	}
	want := make(map[string]*discordgo.ApplicationCommandOption, len(def.Options))
	for _, o := range def.Options {
		want[o.Name] = o
	}

	got := make(options, len(data.Options))
	for _, o := range data.Options {
		od, ok := want[o.Name]
		if !ok {
			return nil, fmt.Errorf("%w: /%s has no option %q", errBadOptions, data.Name, o.Name)
		}
		if o.Type != od.Type {
			return nil, fmt.Errorf("%w: /%s option %q is %s, want %s", errBadOptions, data.Name, o.Name, o.Type, od.Type)
		}
		got[o.Name] = o
	}
	for _, od := range def.Options {
		if _, ok := got[od.Name]; od.Required && !ok {
			return nil, fmt.Errorf("%w: /%s missing required option %q", errBadOptions, data.Name, od.Name)
		}
	}
	return got, nil
}

func (o options) str(name string) (string, bool) {
	opt, ok := o[name]
	if !ok {
		return "", false
	}
	return opt.StringValue(), true
}

func decodeSetupCaptcha(data discordgo.ApplicationCommandInteractionData) (SetupCaptchaRequest, error) {
	opts, err := decodeOptions(data)
	if err != nil {
		return SetupCaptchaRequest{}, err
	}
	req := SetupCaptchaRequest{
		RoleID:    opts["role"].RoleValue(nil, "").ID,
		ChannelID: opts["channel"].ChannelValue(nil).ID,
	}
	// los nombres vienen en resolved; si no, mostramos la mención
	req.RoleName = "<@&" + req.RoleID + ">"
	req.ChannelName = "<#" + req.ChannelID + ">"
	if data.Resolved != nil {
		if ro, ok := data.Resolved.Roles[req.RoleID]; ok && ro.Name != "" {
			req.RoleName = ro.Name
		}
		if ch, ok := data.Resolved.Channels[req.ChannelID]; ok && ch.Name != "" {
			req.ChannelName = ch.Name
		}
	}
	return req, nil
}

func decodeSetEmbed(data discordgo.ApplicationCommandInteractionData) (SetEmbedRequest, error) {
	opts, err := decodeOptions(data)
	if err != nil {
		return SetEmbedRequest{}, err
	}
	req := SetEmbedRequest{}
	req.Title, _ = opts.str("title")
	req.Description, _ = opts.str("description")
	if c, ok := opts.str("color"); ok && c != "" {
		req.Color = &c
	}
	return req, nil
}

func decodeAFK(data discordgo.ApplicationCommandInteractionData) (AFKRequest, error) {
	opts, err := decodeOptions(data)
	if err != nil {
		return AFKRequest{}, err
	}
	msg, _ := opts.str("message")
	return AFKRequest{Message: msg}, nil
}

func decodeSay(data discordgo.ApplicationCommandInteractionData) (SayRequest, error) {
	opts, err := decodeOptions(data)
	if err != nil {
		return SayRequest{}, err
	}
	req := SayRequest{}
	req.Message, _ = opts.str("message")
	if ch, ok := opts["channel"]; ok {
		req.ChannelID = ch.ChannelValue(nil).ID
	}
	return req, nil
}

// modalValue busca el valor de un TextInput por custom_id dentro del modal.
func modalValue(data discordgo.ModalSubmitInteractionData, customID string) (string, bool) {
	for _, row := range data.Components {
		var comps []discordgo.MessageComponent
		switch r := row.(type) {
		case *discordgo.ActionsRow:
			comps = r.Components
		case discordgo.ActionsRow:
			comps = r.Components
		}
		for _, c := range comps {
			switch ti := c.(type) {
			case *discordgo.TextInput:
				if ti.CustomID == customID {
					return ti.Value, true
				}
			case discordgo.TextInput:
				if ti.CustomID == customID {
					return ti.Value, true
				}
			}
		}
	}
	return "", false
}
