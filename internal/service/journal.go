package service

import (
	"TimeCapsule/internal/model"
	"TimeCapsule/internal/repo"
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// JournalService — операции дневника от имени конкретного пользователя.
// Чужие записи для вызывающего неотличимы от отсутствующих: ErrNotFound.
type JournalService struct {
	store  repo.Storage
	logger *zap.SugaredLogger
}

func NewJournalService(store repo.Storage, logger *zap.SugaredLogger) *JournalService {
	return &JournalService{store: store, logger: logger}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (s *JournalService) ownedCategory(ctx context.Context, userID, id int64) (*model.Category, error) {
	c, err := s.store.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil || c.UserID != userID {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *JournalService) ownedEntry(ctx context.Context, userID, id int64) (*model.Entry, error) {
	e, err := s.store.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil || e.UserID != userID {
		return nil, ErrNotFound
	}
	return e, nil
}

func (s *JournalService) ownedContact(ctx context.Context, userID, id int64) (*model.Contact, error) {
	c, err := s.store.GetContact(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil || c.UserID != userID {
		return nil, ErrNotFound
	}
	return c, nil
}

// ownedSchedule: расписание принадлежит владельцу своей записи.
func (s *JournalService) ownedSchedule(ctx context.Context, userID, id int64) (*model.Schedule, error) {
	sc, err := s.store.GetSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, ErrNotFound
	}
	if _, err := s.ownedEntry(ctx, userID, sc.EntryID); err != nil {
		return nil, err
	}
	return sc, nil
}

// reference проверяет ссылку из тела запроса: отсутствие превращается в ошибку валидации поля.
func reference(field string, err error) error {
	if errors.Is(err, ErrNotFound) {
		return invalid(field, "does not reference an existing record")
	}
	return err
}
