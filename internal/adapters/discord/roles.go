package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/wisteria-bot/internal/app/service"
)

// roleGranter implementa service.RoleGranter: primero State (cache del
// gateway), después REST.
type roleGranter struct {
	s     Session
	state *discordgo.State // nil por HTTP o en tests
}

var _ service.RoleGranter = roleGranter{}

func (g roleGranter) LookupRole(ctx context.Context, guildID, roleID string) (string, error) {
	if g.state != nil {
		if ro, err := g.state.Role(guildID, roleID); err == nil && ro != nil {
			return ro.Name, nil
		}
	}
	roles, err := g.s.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("%w: guild roles: %w", service.ErrGrantFailed, err)
	}
	for _, ro := range roles {
		if ro.ID == roleID {
			return ro.Name, nil
		}
	}
	return "", service.ErrRoleNotFound
}

func (g roleGranter) GrantRole(ctx context.Context, guildID, userID, roleID string) error {
	err := g.s.GuildMemberRoleAdd(guildID, userID, roleID, discordgo.WithContext(ctx))
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil && restErr.Message.Code == discordgo.ErrCodeUnknownRole {
		return service.ErrRoleNotFound
	}
	return err
}
