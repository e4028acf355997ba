package service

import "errors"

var (
	// configuración faltante (canal/rol del guild)
	ErrNotConfigured     = errors.New("verification is not configured for this guild")
	ErrRoleNotConfigured = errors.New("no verification role configured")

	ErrInvalidColor = errors.New("invalid hex color")

	// el rol configurado ya no existe en el guild
	ErrRoleNotFound = errors.New("verification role not found")
	// el rol existe pero Discord rechazó el alta (permisos, jerarquía, red)
	ErrGrantFailed = errors.New("could not grant verification role")

	ErrNoChallenge   = errors.New("no active challenge")
	ErrIncorrectCode = errors.New("incorrect challenge code")
)
