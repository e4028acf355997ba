package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jose-valero/wisteria-bot/internal/domain"
	"github.com/jose-valero/wisteria-bot/internal/infra/storage"
)

const (
	DefaultEmbedTitle       = "CAPTCHA Verification"
	DefaultEmbedDescription = "Click the button below to receive your CAPTCHA."
	DefaultEmbedColor       = "#0099ff"
)

type VerificationService struct {
	verify     Store[domain.GuildVerificationConfig]
	embeds     Store[domain.GuildEmbedConfig]
	challenges Store[domain.Challenge]

	newCode func() string
	now     func() time.Time
}

type VerificationOption func(*VerificationService)

func WithCodeGenerator(f func() string) VerificationOption {
	return func(s *VerificationService) { s.newCode = f }
}

func WithClock(f func() time.Time) VerificationOption {
	return func(s *VerificationService) { s.now = f }
}

func NewVerificationService(
	verify Store[domain.GuildVerificationConfig],
	embeds Store[domain.GuildEmbedConfig],
	challenges Store[domain.Challenge],
	opts ...VerificationOption,
) *VerificationService {
	s := &VerificationService{
		verify:     verify,
		embeds:     embeds,
		challenges: challenges,
		newCode:    func() string { return GenerateCode(CodeLength) },
		now:        time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Setup pisa la configuración del guild sin validar nada (se valida al usarla).
func (s *VerificationService) Setup(ctx context.Context, guildID, roleID, channelID string) error {
	return s.verify.Set(ctx, guildID, domain.GuildVerificationConfig{
		GuildID:   guildID,
		RoleID:    roleID,
		ChannelID: channelID,
	})
}

// SetEmbed guarda título y descripción siempre. El color sólo si es un hex válido;
// si no lo es devuelve ErrInvalidColor pero lo demás ya quedó guardado.
func (s *VerificationService) SetEmbed(ctx context.Context, guildID, title, description string, color *string) (domain.GuildEmbedConfig, error) {
	// get + set sin lock: dos /setcaptchaembed simultáneos en el mismo guild
	// pueden pisarse, gana el último
	cur, err := s.embeds.Get(ctx, guildID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return domain.GuildEmbedConfig{}, err
	}
	cur.GuildID = guildID
	cur.Title = title
	cur.Description = description

	var colorErr error
	if color != nil {
		if ValidColor(*color) {
			cur.Color = *color
		} else {
			colorErr = fmt.Errorf("%w: %q", ErrInvalidColor, *color)
		}
	}

	if err := s.embeds.Set(ctx, guildID, cur); err != nil {
		return domain.GuildEmbedConfig{}, err
	}
	return cur, colorErr
}

// Panel es lo que se renderiza en el canal: config del guild + defaults.
type Panel struct {
	ChannelID   string
	Title       string
	Description string
	Color       string
	ColorValue  int
}

// RenderConfig aplica los defaults campo por campo.
func (s *VerificationService) RenderConfig(ctx context.Context, guildID string) (Panel, error) {
	cfg, err := s.embeds.Get(ctx, guildID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return Panel{}, err
	}
	p := Panel{
		Title:       firstNonEmpty(cfg.Title, DefaultEmbedTitle),
		Description: firstNonEmpty(cfg.Description, DefaultEmbedDescription),
		Color:       firstNonEmpty(cfg.Color, DefaultEmbedColor),
	}
	p.ColorValue, err = ParseColor(p.Color)
	if err != nil {
		// sólo pasaría con datos viejos/corruptos en el store
		p.Color = DefaultEmbedColor
		p.ColorValue, _ = ParseColor(DefaultEmbedColor)
	}
	return p, nil
}

// PanelFor devuelve el panel listo para mandar al canal configurado.
func (s *VerificationService) PanelFor(ctx context.Context, guildID string) (Panel, error) {
	vc, err := s.verify.Get(ctx, guildID)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && vc.ChannelID == "") {
		return Panel{}, ErrNotConfigured
	}
	if err != nil {
		return Panel{}, err
	}
	p, err := s.RenderConfig(ctx, guildID)
	if err != nil {
		return Panel{}, err
	}
	p.ChannelID = vc.ChannelID
	return p, nil
}

// IssueChallenge genera un código nuevo y pisa cualquier pendiente del usuario.
func (s *VerificationService) IssueChallenge(ctx context.Context, userID string) (domain.Challenge, error) {
	ch := domain.Challenge{
		UserID:   userID,
		Code:     s.newCode(),
		IssuedAt: s.now(),
	}
	if err := s.challenges.Set(ctx, userID, ch); err != nil {
		return domain.Challenge{}, err
	}
	return ch, nil
}

// Verify compara el input con el código pendiente y, si coincide, otorga el rol.
// El challenge sólo se borra cuando el rol quedó asignado; cualquier otro
// resultado lo deja como estaba para poder reintentar.
func (s *VerificationService) Verify(ctx context.Context, guildID, userID, input string, g RoleGranter) (string, error) {
	ch, err := s.challenges.Get(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return "", ErrNoChallenge
	}
	if err != nil {
		return "", err
	}
	if input != ch.Code {
		return "", ErrIncorrectCode
	}

	vc, err := s.verify.Get(ctx, guildID)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && vc.RoleID == "") {
		return "", ErrRoleNotConfigured
	}
	if err != nil {
		return "", err
	}

	roleName, err := g.LookupRole(ctx, guildID, vc.RoleID)
	if err != nil {
		return "", err
	}
	if err := g.GrantRole(ctx, guildID, userID, vc.RoleID); err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrGrantFailed, vc.RoleID, err)
	}

	if err := s.challenges.Delete(ctx, userID); err != nil {
		return roleName, fmt.Errorf("clear challenge: %w", err)
	}
	return roleName, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
