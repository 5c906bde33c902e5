package repo

import (
	"TimeCapsule/internal/model"
	"context"
	"errors"
	"fmt"
)

// Ошибки хранилища. «Не найдено» ошибкой не считается: методы возвращают nil, nil.
var (
	ErrEntryAlreadyScheduled = errors.New("entry already has a schedule")
	ErrDuplicateUsername     = errors.New("username already exists")
)

// UserRepository — доступ к пользователям.
type UserRepository interface {
	GetUser(ctx context.Context, id int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, in model.InsertUser) (*model.User, error)
}

// CategoryRepository — доступ к категориям.
type CategoryRepository interface {
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
	ListCategories(ctx context.Context, userID int64) ([]model.Category, error)
	CreateCategory(ctx context.Context, in model.InsertCategory) (*model.Category, error)
	UpdateCategory(ctx context.Context, id int64, p model.CategoryPatch) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) (bool, error)
}

// EntryRepository — доступ к записям. DeleteEntry удаляет и все расписания записи.
type EntryRepository interface {
	GetEntry(ctx context.Context, id int64) (*model.Entry, error)
	ListEntries(ctx context.Context, userID int64) ([]model.Entry, error)
	ListEntriesByType(ctx context.Context, userID int64, t model.EntryType) ([]model.Entry, error)
	ListEntriesByCategory(ctx context.Context, userID, categoryID int64) ([]model.Entry, error)
	CreateEntry(ctx context.Context, in model.InsertEntry) (*model.Entry, error)
	UpdateEntry(ctx context.Context, id int64, p model.EntryPatch) (*model.Entry, error)
	DeleteEntry(ctx context.Context, id int64) (bool, error)
}

// ContactRepository — доступ к контактам.
type ContactRepository interface {
	GetContact(ctx context.Context, id int64) (*model.Contact, error)
	ListContacts(ctx context.Context, userID int64) ([]model.Contact, error)
	CreateContact(ctx context.Context, in model.InsertContact) (*model.Contact, error)
	UpdateContact(ctx context.Context, id int64, p model.ContactPatch) (*model.Contact, error)
	DeleteContact(ctx context.Context, id int64) (bool, error)
}

// ScheduleRepository — доступ к расписаниям. Создание и удаление расписания
// переключают visibility связанной записи.
type ScheduleRepository interface {
	GetSchedule(ctx context.Context, id int64) (*model.Schedule, error)
	// ListSchedules возвращает расписания, чьи записи принадлежат пользователю.
	ListSchedules(ctx context.Context, userID int64) ([]model.Schedule, error)
	FindScheduleByEntryID(ctx context.Context, entryID int64) (*model.Schedule, error)
	CreateSchedule(ctx context.Context, in model.InsertSchedule) (*model.Schedule, error)
	UpdateSchedule(ctx context.Context, id int64, p model.SchedulePatch) (*model.Schedule, error)
	DeleteSchedule(ctx context.Context, id int64) (bool, error)
}

// EntryViewRepository — денормализованные представления записей.
type EntryViewRepository interface {
	EntriesWithSchedules(ctx context.Context, userID int64) ([]model.EntryWithSchedule, error)
	// ScheduledEntries фильтрует EntriesWithSchedules по наличию расписания, а не по visibility.
	ScheduledEntries(ctx context.Context, userID int64) ([]model.EntryWithSchedule, error)
}

// Storage — полный контракт хранилища. Каждая операция атомарна относительно других.
type Storage interface {
	UserRepository
	CategoryRepository
	EntryRepository
	ContactRepository
	ScheduleRepository
	EntryViewRepository
}

// ReferencePolicy определяет, что происходит со ссылками на удаляемую категорию или контакт.
type ReferencePolicy string

const (
	// Tolerate оставляет ссылку «висячей».
	Tolerate ReferencePolicy = "tolerate"
	// Nullify очищает categoryId у записей удалённой категории.
	Nullify ReferencePolicy = "nullify"
	// Cascade удаляет расписания, адресованные удалённому контакту.
	Cascade ReferencePolicy = "cascade"
)

// DuplicateSchedulePolicy определяет реакцию на второе расписание для одной записи.
type DuplicateSchedulePolicy string

const (
	RejectDuplicate  DuplicateSchedulePolicy = "reject"
	ReplaceDuplicate DuplicateSchedulePolicy = "replace"
)

// Policy — явные правила ссылочной целостности хранилища.
type Policy struct {
	CategoryOnDelete  ReferencePolicy
	ContactOnDelete   ReferencePolicy
	DuplicateSchedule DuplicateSchedulePolicy
}

// DefaultPolicy: висячие ссылки допускаются, второе расписание отклоняется.
func DefaultPolicy() Policy {
	return Policy{
		CategoryOnDelete:  Tolerate,
		ContactOnDelete:   Tolerate,
		DuplicateSchedule: RejectDuplicate,
	}
}

// ParsePolicy собирает Policy из строковых значений конфигурации. Пустые значения
// заменяются значениями по умолчанию.
func ParsePolicy(categoryOnDelete, contactOnDelete, duplicateSchedule string) (Policy, error) {
	p := DefaultPolicy()
	switch ReferencePolicy(categoryOnDelete) {
	case "":
	case Tolerate, Nullify:
		p.CategoryOnDelete = ReferencePolicy(categoryOnDelete)
	default:
		return p, fmt.Errorf("unsupported category delete policy %q", categoryOnDelete)
	}
	switch ReferencePolicy(contactOnDelete) {
	case "":
	case Tolerate, Cascade:
		p.ContactOnDelete = ReferencePolicy(contactOnDelete)
	default:
		return p, fmt.Errorf("unsupported contact delete policy %q", contactOnDelete)
	}
	switch DuplicateSchedulePolicy(duplicateSchedule) {
	case "":
	case RejectDuplicate, ReplaceDuplicate:
		p.DuplicateSchedule = DuplicateSchedulePolicy(duplicateSchedule)
	default:
		return p, fmt.Errorf("unsupported duplicate schedule policy %q", duplicateSchedule)
	}
	return p, nil
}
