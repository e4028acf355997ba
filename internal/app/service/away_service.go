package service

import (
	"context"
	"errors"
	"time"

	"github.com/jose-valero/wisteria-bot/internal/domain"
	"github.com/jose-valero/wisteria-bot/internal/infra/storage"
)

const DefaultAwayMessage = "AFK"

type AwayService struct {
	repo BatchStore[domain.AwayStatus]
	now  func() time.Time
}

func NewAwayService(repo BatchStore[domain.AwayStatus]) *AwayService {
	return &AwayService{repo: repo, now: time.Now}
}

// SetAway pisa el estado anterior. Mensaje vacío = "AFK".
func (s *AwayService) SetAway(ctx context.Context, userID, message string) (domain.AwayStatus, error) {
	if message == "" {
		message = DefaultAwayMessage
	}
	st := domain.AwayStatus{UserID: userID, Message: message, Since: s.now()}
	if err := s.repo.Set(ctx, userID, st); err != nil {
		return domain.AwayStatus{}, err
	}
	return st, nil
}

// Return se llama con cada mensaje del usuario: si estaba AFK lo borra y
// devuelve el estado que tenía.
func (s *AwayService) Return(ctx context.Context, userID string) (domain.AwayStatus, bool, error) {
	st, err := s.repo.Get(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.AwayStatus{}, false, nil
	}
	if err != nil {
		return domain.AwayStatus{}, false, err
	}
	if err := s.repo.Delete(ctx, userID); err != nil {
		return domain.AwayStatus{}, false, err
	}
	return st, true, nil
}

// Mentioned devuelve, en el orden de la mención y sin repetidos, los usuarios
// mencionados que están AFK. No toca sus estados.
func (s *AwayService) Mentioned(ctx context.Context, userIDs []string) ([]domain.AwayStatus, error) {
	ids := make([]string, 0, len(userIDs))
	seen := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	found, err := s.repo.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]domain.AwayStatus, 0, len(found))
	for _, id := range ids {
		if st, ok := found[id]; ok {
			out = append(out, st)
		}
	}
	return out, nil
}
