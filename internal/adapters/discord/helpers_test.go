package discord

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/wisteria-bot/internal/app/service"
	"github.com/jose-valero/wisteria-bot/internal/infra/storage"
)

const testCode = "Xy12Z9"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

type testEnv struct {
	r      *Router
	fs     *FakeSession
	verify *service.VerificationService
	away   *service.AwayService
	kv     *storage.MemoryKV
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	kv := storage.NewMemoryKV()
	verify, away := service.NewServices(kv, service.WithCodeGenerator(func() string { return testCode }))
	fs := NewFakeSession()
	r := NewRouter(fs, nil, testLogger(), Config{AppID: "app", ShowCaptchaHint: true}, verify, away)
	return &testEnv{r: r, fs: fs, verify: verify, away: away, kv: kv}
}

// capture junta las respuestas que el Router entrega por el Responder.
type capture struct {
	resps []*discordgo.InteractionResponse
	err   error
}

func (c *capture) respond(resp *discordgo.InteractionResponse) error {
	if c.err != nil {
		return c.err
	}
	c.resps = append(c.resps, resp)
	return nil
}

func (c *capture) last() *discordgo.InteractionResponse {
	if len(c.resps) == 0 {
		return nil
	}
	return c.resps[len(c.resps)-1]
}

func (e *testEnv) dispatch(ic *discordgo.InteractionCreate) *capture {
	c := &capture{}
	e.r.HandleInteraction(context.Background(), ic, c.respond)
	return c
}

func member(userID string) *discordgo.Member {
	return &discordgo.Member{User: &discordgo.User{ID: userID, Username: "user-" + userID}}
}

func strOpt(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: v}
}

func roleOpt(name, id string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionRole, Value: id}
}

func chanOpt(name, id string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionChannel, Value: id}
}

func slash(guildID, userID, name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:        "i-" + name,
		Type:      discordgo.InteractionApplicationCommand,
		GuildID:   guildID,
		ChannelID: "here",
		Member:    member(userID),
		Data: discordgo.ApplicationCommandInteractionData{
			Name:    name,
			Options: opts,
		},
	}}
}

func button(guildID, userID, customID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:      "i-button",
		Type:    discordgo.InteractionMessageComponent,
		GuildID: guildID,
		Member:  member(userID),
		Data:    discordgo.MessageComponentInteractionData{CustomID: customID, ComponentType: discordgo.ButtonComponent},
	}}
}

func modalSubmit(guildID, userID, value string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:      "i-modal",
		Type:    discordgo.InteractionModalSubmit,
		GuildID: guildID,
		Member:  member(userID),
		Data: discordgo.ModalSubmitInteractionData{
			CustomID: ModalCaptcha,
			Components: []discordgo.MessageComponent{
				&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					&discordgo.TextInput{CustomID: FieldCaptchaInput, Value: value},
				}},
			},
		},
	}}
}

func content(resp *discordgo.InteractionResponse) string {
	if resp == nil || resp.Data == nil {
		return ""
	}
	return resp.Data.Content
}

func ephemeral(resp *discordgo.InteractionResponse) bool {
	return resp != nil && resp.Data != nil && resp.Data.Flags&discordgo.MessageFlagsEphemeral != 0
}
