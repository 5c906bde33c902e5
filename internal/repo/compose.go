package repo

import (
	"TimeCapsule/internal/model"
	"context"
)

// viewSource — минимальный набор чтений, нужный для сборки представления.
// Реализации вызывают его внутри одной блокировки или транзакции.
type viewSource interface {
	ListEntries(ctx context.Context, userID int64) ([]model.Entry, error)
	FindScheduleByEntryID(ctx context.Context, entryID int64) (*model.Schedule, error)
	GetContact(ctx context.Context, id int64) (*model.Contact, error)
}

// composeEntries собирает по записи на каждую Entry пользователя в порядке вставки.
// Отсутствующий контакт расписания даёт contact=nil, а не ошибку.
func composeEntries(ctx context.Context, src viewSource, userID int64) ([]model.EntryWithSchedule, error) {
	entries, err := src.ListEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]model.EntryWithSchedule, 0, len(entries))
	for _, e := range entries {
		view := model.EntryWithSchedule{Entry: e}
		s, err := src.FindScheduleByEntryID(ctx, e.ID)
		if err != nil {
			return nil, err
		}
		if s != nil {
			c, err := src.GetContact(ctx, s.ContactID)
			if err != nil {
				return nil, err
			}
			view.Schedule = &model.ScheduleWithContact{Schedule: *s, Contact: c}
		}
		out = append(out, view)
	}
	return out, nil
}

// onlyScheduled оставляет записи, у которых есть расписание.
func onlyScheduled(views []model.EntryWithSchedule) []model.EntryWithSchedule {
	out := make([]model.EntryWithSchedule, 0, len(views))
	for _, v := range views {
		if v.Schedule != nil {
			out = append(out, v)
		}
	}
	return out
}
