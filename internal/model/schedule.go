package model

import "time"

// ScheduleStatusPending — статус нового расписания. Другие статусы сейчас не выставляются.
const ScheduleStatusPending = "pending"

// Schedule — отложенная доставка записи контакту.
type Schedule struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	EntryID         int64     `gorm:"not null;index" json:"entryId"`
	ContactID       int64     `gorm:"not null;index" json:"contactId"`
	DeliveryDate    time.Time `gorm:"not null" json:"deliveryDate"`
	Status          string    `gorm:"not null;default:'pending'" json:"status"`
	ReminderEnabled bool      `gorm:"not null" json:"reminderEnabled"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

type InsertSchedule struct {
	EntryID         int64
	ContactID       int64
	DeliveryDate    time.Time
	ReminderEnabled bool
}

// SchedulePatch — изменяемые поля расписания. entryId и status не меняются,
// иначе нарушилась бы связь visibility записи с расписанием.
type SchedulePatch struct {
	ContactID       *int64
	DeliveryDate    *time.Time
	ReminderEnabled *bool
}

func (p SchedulePatch) Apply(s *Schedule) {
	if p.ContactID != nil {
		s.ContactID = *p.ContactID
	}
	if p.DeliveryDate != nil {
		s.DeliveryDate = *p.DeliveryDate
	}
	if p.ReminderEnabled != nil {
		s.ReminderEnabled = *p.ReminderEnabled
	}
}

func (p SchedulePatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.ContactID != nil {
		cols["contact_id"] = *p.ContactID
	}
	if p.DeliveryDate != nil {
		cols["delivery_date"] = *p.DeliveryDate
	}
	if p.ReminderEnabled != nil {
		cols["reminder_enabled"] = *p.ReminderEnabled
	}
	return cols
}

// ScheduleWithContact — расписание вместе с контактом-получателем (если он ещё существует).
type ScheduleWithContact struct {
	Schedule
	Contact *Contact `json:"contact"`
}

// EntryWithSchedule — денормализованное представление записи для отображения.
// Не хранится, собирается при каждом чтении.
type EntryWithSchedule struct {
	Entry
	Schedule *ScheduleWithContact `json:"schedule"`
}
