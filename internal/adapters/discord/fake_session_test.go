package discord

import (
	"github.com/bwmarrin/discordgo"
)

// FakeSession es un stub programable de Session: cada método tiene su Func
// y todas las llamadas quedan en el trace.
type FakeSession struct {
	trace []string

	InteractionRespondFunc              func(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	ChannelMessageSendFunc              func(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendComplexFunc       func(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendReplyFunc         func(channelID, content string, reference *discordgo.MessageReference, options ...discordgo.RequestOption) (*discordgo.Message, error)
	GuildRolesFunc                      func(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error)
	GuildMemberRoleAddFunc              func(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	ApplicationCommandBulkOverwriteFunc func(appID, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)

	handlers []interface{}
}

var _ Session = (*FakeSession)(nil)

func NewFakeSession() *FakeSession {
	return &FakeSession{trace: []string{}}
}

func (f *FakeSession) record(step string) { f.trace = append(f.trace, step) }

func (f *FakeSession) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeSession) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
	f.record("InteractionRespond")
	if f.InteractionRespondFunc != nil {
		return f.InteractionRespondFunc(interaction, resp, options...)
	}
	return nil
}

func (f *FakeSession) ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.record("ChannelMessageSend")
	if f.ChannelMessageSendFunc != nil {
		return f.ChannelMessageSendFunc(channelID, content, options...)
	}
	return &discordgo.Message{ID: "fake-msg", ChannelID: channelID, Content: content}, nil
}

func (f *FakeSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.record("ChannelMessageSendComplex")
	if f.ChannelMessageSendComplexFunc != nil {
		return f.ChannelMessageSendComplexFunc(channelID, data, options...)
	}
	return &discordgo.Message{ID: "fake-msg", ChannelID: channelID}, nil
}

func (f *FakeSession) ChannelMessageSendReply(channelID, content string, reference *discordgo.MessageReference, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.record("ChannelMessageSendReply")
	if f.ChannelMessageSendReplyFunc != nil {
		return f.ChannelMessageSendReplyFunc(channelID, content, reference, options...)
	}
	return &discordgo.Message{ID: "fake-reply", ChannelID: channelID, Content: content}, nil
}

func (f *FakeSession) GuildRoles(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error) {
	f.record("GuildRoles")
	if f.GuildRolesFunc != nil {
		return f.GuildRolesFunc(guildID, options...)
	}
	return nil, nil
}

func (f *FakeSession) GuildMemberRoleAdd(guildID, userID, roleID string, options ...discordgo.RequestOption) error {
	f.record("GuildMemberRoleAdd")
	if f.GuildMemberRoleAddFunc != nil {
		return f.GuildMemberRoleAddFunc(guildID, userID, roleID, options...)
	}
	return nil
}

func (f *FakeSession) ApplicationCommandBulkOverwrite(appID, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	f.record("ApplicationCommandBulkOverwrite")
	if f.ApplicationCommandBulkOverwriteFunc != nil {
		return f.ApplicationCommandBulkOverwriteFunc(appID, guildID, commands, options...)
	}
	return commands, nil
}

func (f *FakeSession) AddHandler(handler interface{}) func() {
	f.record("AddHandler")
	f.handlers = append(f.handlers, handler)
	return func() {}
}
