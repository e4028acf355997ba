package domain

import "time"

// GuildVerificationConfig ata el rol a otorgar y el canal del panel.
type GuildVerificationConfig struct {
	GuildID   string `json:"guild_id"`
	RoleID    string `json:"role_id"`
	ChannelID string `json:"channel_id"`
}

// GuildEmbedConfig es lo que el admin personaliza del panel. Color vacío = default.
type GuildEmbedConfig struct {
	GuildID     string `json:"guild_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color,omitempty"`
}

// Challenge es el código pendiente de un usuario (uno solo por usuario).
type Challenge struct {
	UserID   string    `json:"user_id"`
	Code     string    `json:"code"`
	IssuedAt time.Time `json:"issued_at"`
}

type AwayStatus struct {
	UserID  string    `json:"user_id"`
	Message string    `json:"message"`
	Since   time.Time `json:"since"`
}
