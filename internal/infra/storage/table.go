package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Table es una vista tipada sobre un KV: prefija las claves con el namespace
// y serializa los valores como JSON.
type Table[T any] struct {
	kv        KV
	namespace string
}

func NewTable[T any](kv KV, namespace string) *Table[T] {
	return &Table[T]{kv: kv, namespace: namespace}
}

func (t *Table[T]) key(id string) string { return t.namespace + ":" + id }

func (t *Table[T]) Get(ctx context.Context, id string) (T, error) {
	var out T
	raw, err := t.kv.Get(ctx, t.key(id))
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", t.key(id), err)
	}
	return out, nil
}

func (t *Table[T]) Set(ctx context.Context, id string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", t.key(id), err)
	}
	return t.kv.Set(ctx, t.key(id), raw)
}

func (t *Table[T]) Delete(ctx context.Context, id string) error {
	return t.kv.Delete(ctx, t.key(id))
}

// GetMany usa BatchGetter si el backend lo soporta; si no, cae a un Get por id.
// El mapa resultante va indexado por id (sin namespace).
func (t *Table[T]) GetMany(ctx context.Context, ids []string) (map[string]T, error) {
	out := make(map[string]T, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	bg, ok := t.kv.(BatchGetter)
	if !ok {
		for _, id := range ids {
			v, err := t.Get(ctx, id)
			if errors.Is(err, ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			out[id] = v
		}
		return out, nil
	}

	keys := make([]string, len(ids))
	byKey := make(map[string]string, len(ids))
	for i, id := range ids {
		keys[i] = t.key(id)
		byKey[keys[i]] = id
	}
	raws, err := bg.GetMany(ctx, keys)
	if err != nil {
		return nil, err
	}
	for k, raw := range raws {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", k, err)
		}
		out[byKey[k]] = v
	}
	return out, nil
}
