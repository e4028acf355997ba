package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// KV es el contrato mínimo de almacenamiento: get/set/delete por clave.
// Get devuelve ErrNotFound si la clave no existe.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// BatchGetter lo implementan los backends que pueden leer varias claves de una.
// Las claves inexistentes simplemente no aparecen en el mapa.
type BatchGetter interface {
	GetMany(ctx context.Context, keys []string) (map[string][]byte, error)
}
