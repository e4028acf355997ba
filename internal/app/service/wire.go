package service

import (
	"github.com/jose-valero/wisteria-bot/internal/domain"
	"github.com/jose-valero/wisteria-bot/internal/infra/storage"
)

// Namespaces de cada tabla dentro del KV.
const (
	NSVerify    = "verify"
	NSEmbed     = "embed"
	NSChallenge = "challenge"
	NSAway      = "away"
)

// NewServices arma los servicios sobre un único KV.
func NewServices(kv storage.KV, opts ...VerificationOption) (*VerificationService, *AwayService) {
	verify := NewVerificationService(
		storage.NewTable[domain.GuildVerificationConfig](kv, NSVerify),
		storage.NewTable[domain.GuildEmbedConfig](kv, NSEmbed),
		storage.NewTable[domain.Challenge](kv, NSChallenge),
		opts...,
	)
	away := NewAwayService(storage.NewTable[domain.AwayStatus](kv, NSAway))
	return verify, away
}
