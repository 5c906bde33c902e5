package service

import (
	"TimeCapsule/internal/model"
	"TimeCapsule/internal/repo"
	"context"
	"errors"
	"fmt"
	"time"
)

// ScheduleInput — данные нового расписания.
type ScheduleInput struct {
	EntryID         int64
	ContactID       int64
	DeliveryDate    time.Time
	ReminderEnabled bool
}

func (s *JournalService) ListSchedules(ctx context.Context, userID int64) ([]model.Schedule, error) {
	return s.store.ListSchedules(ctx, userID)
}

func (s *JournalService) GetSchedule(ctx context.Context, userID, id int64) (*model.Schedule, error) {
	return s.ownedSchedule(ctx, userID, id)
}

// CreateSchedule привязывает запись к контакту; запись становится scheduled.
func (s *JournalService) CreateSchedule(ctx context.Context, userID int64, in ScheduleInput) (*model.Schedule, error) {
	if in.DeliveryDate.IsZero() {
		return nil, invalid("deliveryDate", "must be set")
	}
	if _, err := s.ownedEntry(ctx, userID, in.EntryID); err != nil {
		return nil, reference("entryId", err)
	}
	if _, err := s.ownedContact(ctx, userID, in.ContactID); err != nil {
		return nil, reference("contactId", err)
	}
	sc, err := s.store.CreateSchedule(ctx, model.InsertSchedule{
		EntryID:         in.EntryID,
		ContactID:       in.ContactID,
		DeliveryDate:    in.DeliveryDate,
		ReminderEnabled: in.ReminderEnabled,
	})
	if err != nil {
		if errors.Is(err, repo.ErrEntryAlreadyScheduled) {
			return nil, ErrAlreadyScheduled
		}
		return nil, err
	}
	s.logger.Infow("entry scheduled", "entryID", sc.EntryID, "scheduleID", sc.ID, "deliveryDate", sc.DeliveryDate)
	return sc, nil
}

// UpdateSchedule меняет получателя, дату или напоминание; visibility записи не трогается.
func (s *JournalService) UpdateSchedule(ctx context.Context, userID, id int64, p model.SchedulePatch) (*model.Schedule, error) {
	if p.DeliveryDate != nil && p.DeliveryDate.IsZero() {
		return nil, invalid("deliveryDate", "must be set")
	}
	if _, err := s.ownedSchedule(ctx, userID, id); err != nil {
		return nil, err
	}
	if p.ContactID != nil {
		if _, err := s.ownedContact(ctx, userID, *p.ContactID); err != nil {
			return nil, reference("contactId", err)
		}
	}
	sc, err := s.store.UpdateSchedule(ctx, id, p)
	if err != nil {
		return nil, fmt.Errorf("update schedule %d: %w", id, err)
	}
	if sc == nil {
		return nil, ErrNotFound
	}
	return sc, nil
}

// DeleteSchedule снимает расписание; запись возвращается в private.
func (s *JournalService) DeleteSchedule(ctx context.Context, userID, id int64) error {
	if _, err := s.ownedSchedule(ctx, userID, id); err != nil {
		return err
	}
	ok, err := s.store.DeleteSchedule(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	s.logger.Infow("schedule removed", "scheduleID", id)
	return nil
}
