package service

import "context"

// Store es el puerto de persistencia por clave. Lo implementa storage.Table.
// Get devuelve storage.ErrNotFound si no hay nada guardado.
type Store[T any] interface {
	Get(ctx context.Context, id string) (T, error)
	Set(ctx context.Context, id string, v T) error
	Delete(ctx context.Context, id string) error
}

// BatchStore agrega lectura de varias claves (para las menciones).
type BatchStore[T any] interface {
	Store[T]
	GetMany(ctx context.Context, ids []string) (map[string]T, error)
}

// Lo implementa internal/adapters/discord (State + REST de discordgo).
type RoleGranter interface {
	// LookupRole devuelve el nombre del rol o ErrRoleNotFound.
	LookupRole(ctx context.Context, guildID, roleID string) (string, error)
	GrantRole(ctx context.Context, guildID, userID, roleID string) error
}
