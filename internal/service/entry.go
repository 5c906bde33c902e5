package service

import (
	"TimeCapsule/internal/model"
	"context"
	"fmt"
	"slices"
)

// EntryInput — данные новой записи. Visibility всегда начинается с private.
type EntryInput struct {
	Title      string
	Content    *string
	MediaURL   *string
	Type       model.EntryType
	CategoryID *int64
	Metadata   *string
}

// EntryFilter — необязательные фильтры списка записей. Оба фильтра можно совмещать.
type EntryFilter struct {
	Type       *model.EntryType
	CategoryID *int64
}

func (s *JournalService) ListEntries(ctx context.Context, userID int64, f EntryFilter) ([]model.Entry, error) {
	if f.Type != nil && !f.Type.Valid() {
		return nil, invalid("type", "must be one of text, audio, video")
	}
	var (
		entries []model.Entry
		err     error
	)
	switch {
	case f.CategoryID != nil:
		entries, err = s.store.ListEntriesByCategory(ctx, userID, *f.CategoryID)
		if err == nil && f.Type != nil {
			entries = slices.DeleteFunc(entries, func(e model.Entry) bool { return e.Type != *f.Type })
		}
	case f.Type != nil:
		entries, err = s.store.ListEntriesByType(ctx, userID, *f.Type)
	default:
		entries, err = s.store.ListEntries(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

func (s *JournalService) GetEntry(ctx context.Context, userID, id int64) (*model.Entry, error) {
	return s.ownedEntry(ctx, userID, id)
}

func (s *JournalService) CreateEntry(ctx context.Context, userID int64, in EntryInput) (*model.Entry, error) {
	if blank(in.Title) {
		return nil, invalid("title", "must not be empty")
	}
	if !in.Type.Valid() {
		return nil, invalid("type", "must be one of text, audio, video")
	}
	if in.CategoryID != nil {
		if _, err := s.ownedCategory(ctx, userID, *in.CategoryID); err != nil {
			return nil, reference("categoryId", err)
		}
	}
	e, err := s.store.CreateEntry(ctx, model.InsertEntry{
		UserID:     userID,
		Title:      in.Title,
		Content:    in.Content,
		MediaURL:   in.MediaURL,
		Type:       in.Type,
		CategoryID: in.CategoryID,
		Metadata:   in.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	return e, nil
}

func (s *JournalService) UpdateEntry(ctx context.Context, userID, id int64, p model.EntryPatch) (*model.Entry, error) {
	if p.Title != nil && blank(*p.Title) {
		return nil, invalid("title", "must not be empty")
	}
	if _, err := s.ownedEntry(ctx, userID, id); err != nil {
		return nil, err
	}
	if p.CategoryID.Set && p.CategoryID.Value != nil {
		if _, err := s.ownedCategory(ctx, userID, *p.CategoryID.Value); err != nil {
			return nil, reference("categoryId", err)
		}
	}
	e, err := s.store.UpdateEntry(ctx, id, p)
	if err != nil {
		return nil, fmt.Errorf("update entry %d: %w", id, err)
	}
	if e == nil {
		return nil, ErrNotFound
	}
	return e, nil
}

// DeleteEntry удаляет запись вместе с её расписаниями.
func (s *JournalService) DeleteEntry(ctx context.Context, userID, id int64) error {
	if _, err := s.ownedEntry(ctx, userID, id); err != nil {
		return err
	}
	ok, err := s.store.DeleteEntry(ctx, id)
	if err != nil {
		return fmt.Errorf("delete entry %d: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *JournalService) EntriesWithSchedules(ctx context.Context, userID int64) ([]model.EntryWithSchedule, error) {
	return s.store.EntriesWithSchedules(ctx, userID)
}

func (s *JournalService) ScheduledEntries(ctx context.Context, userID int64) ([]model.EntryWithSchedule, error) {
	return s.store.ScheduledEntries(ctx, userID)
}

// EntrySchedule возвращает расписание записи или ErrNotFound, если его нет.
func (s *JournalService) EntrySchedule(ctx context.Context, userID, entryID int64) (*model.Schedule, error) {
	if _, err := s.ownedEntry(ctx, userID, entryID); err != nil {
		return nil, err
	}
	sc, err := s.store.FindScheduleByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, ErrNotFound
	}
	return sc, nil
}
