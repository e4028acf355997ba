package discord

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/wisteria-bot/internal/app/service"
	"github.com/jose-valero/wisteria-bot/internal/infra/logging"
)

const fallbackMessage = "There was an error while executing the command. Please try again."

var errGuildOnly = errors.New("interaction outside a guild")

type Config struct {
	AppID   string
	GuildID string // vacío = comandos globales

	ShowCaptchaHint bool
	Presence        Presence
}

type Router struct {
	s     Session
	state *discordgo.State
	log   *slog.Logger

	appID    string
	guildID  string
	showHint bool
	presence Presence

	verify *service.VerificationService
	away   *service.AwayService
	roles  service.RoleGranter

	routes map[routeKey]HandlerFunc
}

func NewRouter(
	s Session,
	state *discordgo.State,
	log *slog.Logger,
	cfg Config,
	verify *service.VerificationService,
	away *service.AwayService,
) *Router {
	r := &Router{
		s:        s,
		state:    state,
		log:      log,
		appID:    cfg.AppID,
		guildID:  cfg.GuildID,
		showHint: cfg.ShowCaptchaHint,
		presence: cfg.Presence,
		verify:   verify,
		away:     away,
		roles:    roleGranter{s: s, state: state},
	}
	r.routes = map[routeKey]HandlerFunc{
		{discordgo.InteractionApplicationCommand, CmdSetupCaptcha}:    r.handleSetupCaptcha,
		{discordgo.InteractionApplicationCommand, CmdSetCaptchaEmbed}: r.handleSetCaptchaEmbed,
		{discordgo.InteractionApplicationCommand, CmdSendCaptcha}:     r.handleSendCaptcha,
		{discordgo.InteractionApplicationCommand, CmdAFK}:             r.handleAFK,
		{discordgo.InteractionApplicationCommand, CmdSay}:             r.handleSay,
		{discordgo.InteractionMessageComponent, ButtonGetCaptcha}:     r.handleGetCaptcha,
		{discordgo.InteractionModalSubmit, ModalCaptcha}:              r.handleCaptchaSubmit,
	}
	return r
}

// Handlers engancha un único handler por tipo de evento del gateway.
func (r *Router) Handlers() {
	r.s.AddHandler(func(s *discordgo.Session, ic *discordgo.InteractionCreate) {
		r.HandleInteraction(context.Background(), ic, func(resp *discordgo.InteractionResponse) error {
			return s.InteractionRespond(ic.Interaction, resp)
		})
	})
	r.s.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		r.HandleMessage(context.Background(), m.Message)
	})
	r.s.AddHandler(func(s *discordgo.Session, ev *discordgo.Ready) {
		r.log.Info("connected", "user", ev.User.Username, "id", ev.User.ID, "guilds", len(ev.Guilds))
		if err := r.presence.apply(s); err != nil {
			r.log.Warn("set presence", logging.Err(err))
		}
	})
}

// HandleInteraction resuelve la ruta y ejecuta el handler. Nunca propaga
// errores ni panics: todo termina en log + mensaje al usuario.
func (r *Router) HandleInteraction(ctx context.Context, ic *discordgo.InteractionCreate, respond Responder) {
	if ic == nil || ic.Interaction == nil {
		return
	}
	key := routeKey{kind: ic.Type, id: interactionID(ic)}
	h, ok := r.routes[key]
	if !ok {
		r.log.Debug("unhandled interaction", "type", ic.Type.String(), "id", key.id)
		return
	}

	c := &Ctx{
		Session: r.s,
		Event:   ic,
		GuildID: ic.GuildID,
		respond: respond,
	}
	if u := interactionUser(ic); u != nil {
		c.UserID = u.ID
	}
	c.Log = r.log.With("interaction", key.id, "user", c.UserID, "guild", c.GuildID)

	defer func() {
		if rec := recover(); rec != nil {
			c.Log.Error("panic in interaction handler", "panic", rec)
			r.fallback(c)
		}
	}()
	defer step(c.Log, "interaction."+key.id)()

	if c.GuildID == "" {
		r.replyError(c, errGuildOnly)
		return
	}
	if err := h(ctx, c); err != nil {
		r.replyError(c, err)
	}
}

// userErrors: errores esperados -> mensaje al usuario. El orden importa
// (ErrRoleNotFound puede venir envuelto en ErrGrantFailed).
var userErrors = []struct {
	err       error
	msg       string
	ephemeral bool
}{
	{errGuildOnly, "This command can only be used in a server.", true},
	{errBadOptions, "Some options of this command are missing or invalid.", true},
	{service.ErrNotConfigured, "Please set the channel first using `/setupcaptcha`.", false},
	{service.ErrInvalidColor, "Please provide a valid hex color code (e.g., #ff0000).", true},
	{service.ErrRoleNotConfigured, "No verification role has been set. Please inform the server admin.", true},
	{service.ErrRoleNotFound, "The verification role could not be found. Please contact the server admin.", true},
	{service.ErrGrantFailed, "There was an error assigning the role. Please check my permissions and try again.", true},
	{service.ErrIncorrectCode, "Incorrect CAPTCHA, please try again.", true},
	{service.ErrNoChallenge, "You have no active CAPTCHA. Click **Get CAPTCHA** to receive a new one.", true},
}

func (r *Router) replyError(c *Ctx, err error) {
	for _, ue := range userErrors {
		if !errors.Is(err, ue.err) {
			continue
		}
		if errors.Is(err, service.ErrGrantFailed) || errors.Is(err, errBadOptions) {
			c.Log.Warn("interaction failed", logging.Err(err))
		}
		if c.Replied() {
			return
		}
		send := c.Reply
		if ue.ephemeral {
			send = c.ReplyEphemeral
		}
		if sendErr := send(ue.msg); sendErr != nil {
			c.Log.Error("reply failed", logging.Err(sendErr))
		}
		return
	}

	c.Log.Error("interaction failed", logging.Err(err))
	r.fallback(c)
}

func (r *Router) fallback(c *Ctx) {
	if c.Replied() {
		return
	}
	if err := c.ReplyEphemeral(fallbackMessage); err != nil {
		c.Log.Error("fallback reply failed", logging.Err(err))
	}
}
