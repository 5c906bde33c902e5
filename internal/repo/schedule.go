package repo

import (
	"TimeCapsule/internal/model"
	"context"
	"fmt"
)

func (s *gormStorage) GetSchedule(ctx context.Context, id int64) (*model.Schedule, error) {
	return findOne[model.Schedule](s.conn(ctx), "id = ?", id)
}

func (s *gormStorage) ListSchedules(ctx context.Context, userID int64) ([]model.Schedule, error) {
	db := s.conn(ctx)
	owned := db.Model(&model.Entry{}).Select("id").Where("user_id = ?", userID)
	return findAll[model.Schedule](db, "entry_id IN (?)", owned)
}

func (s *gormStorage) FindScheduleByEntryID(ctx context.Context, entryID int64) (*model.Schedule, error) {
	return findOne[model.Schedule](s.conn(ctx), "entry_id = ?", entryID)
}

// CreateSchedule в одной транзакции сохраняет расписание и переводит запись в scheduled.
func (s *gormStorage) CreateSchedule(ctx context.Context, in model.InsertSchedule) (*model.Schedule, error) {
	sc := &model.Schedule{
		EntryID:         in.EntryID,
		ContactID:       in.ContactID,
		DeliveryDate:    in.DeliveryDate,
		Status:          model.ScheduleStatusPending,
		ReminderEnabled: in.ReminderEnabled,
	}
	err := s.inTx(ctx, func(tx *gormStorage) error {
		existing, err := findOne[model.Schedule](tx.db, "entry_id = ?", in.EntryID)
		if err != nil {
			return err
		}
		if existing != nil {
			if tx.policy.DuplicateSchedule != ReplaceDuplicate {
				return ErrEntryAlreadyScheduled
			}
			if _, err := deleteByID[model.Schedule](tx.db, existing.ID); err != nil {
				return err
			}
		}
		if err := tx.db.Create(sc).Error; err != nil {
			return err
		}
		return setVisibility(tx.db, in.EntryID, model.VisibilityScheduled)
	})
	if err != nil {
		return nil, fmt.Errorf("create schedule for entry %d: %w", in.EntryID, err)
	}
	return sc, nil
}

// UpdateSchedule не трогает visibility записи.
func (s *gormStorage) UpdateSchedule(ctx context.Context, id int64, p model.SchedulePatch) (*model.Schedule, error) {
	return updateRow[model.Schedule](ctx, s, id, p)
}

// DeleteSchedule удаляет расписание и возвращает записи visibility=private.
func (s *gormStorage) DeleteSchedule(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := s.inTx(ctx, func(tx *gormStorage) error {
		sc, err := findOne[model.Schedule](tx.db, "id = ?", id)
		if err != nil || sc == nil {
			return err
		}
		deleted = true
		return tx.deleteSchedule(*sc)
	})
	if err != nil {
		return false, fmt.Errorf("delete schedule %d: %w", id, err)
	}
	return deleted, nil
}

func (s *gormStorage) deleteSchedule(sc model.Schedule) error {
	if _, err := deleteByID[model.Schedule](s.db, sc.ID); err != nil {
		return err
	}
	return setVisibility(s.db, sc.EntryID, model.VisibilityPrivate)
}

func (s *gormStorage) EntriesWithSchedules(ctx context.Context, userID int64) ([]model.EntryWithSchedule, error) {
	var views []model.EntryWithSchedule
	err := s.inTx(ctx, func(tx *gormStorage) error {
		var err error
		views, err = composeEntries(ctx, tx, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("compose entries: %w", err)
	}
	return views, nil
}

func (s *gormStorage) ScheduledEntries(ctx context.Context, userID int64) ([]model.EntryWithSchedule, error) {
	views, err := s.EntriesWithSchedules(ctx, userID)
	if err != nil {
		return nil, err
	}
	return onlyScheduled(views), nil
}
