package repo

import (
	"TimeCapsule/internal/model"
	"context"
	"slices"
	"sync"
	"time"
)

// table — таблица в памяти: строки по id плюс порядок вставки.
// Счётчик id только растёт, удалённые id повторно не выдаются.
// Строки копируются через clone на входе и на выходе, указатели наружу не утекают.
type table[T any] struct {
	next  int64
	rows  map[int64]T
	order []int64
	clone func(T) T
}

func newTable[T any](clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(row T) T { return row }
	}
	return &table[T]{rows: make(map[int64]T), clone: clone}
}

func (t *table[T]) insert(build func(id int64) T) T {
	t.next++
	row := t.clone(build(t.next))
	t.rows[t.next] = row
	t.order = append(t.order, t.next)
	return t.clone(row)
}

func (t *table[T]) get(id int64) (T, bool) {
	row, ok := t.rows[id]
	if !ok {
		return row, false
	}
	return t.clone(row), true
}

func (t *table[T]) replace(id int64, row T) {
	if _, ok := t.rows[id]; ok {
		t.rows[id] = t.clone(row)
	}
}

func (t *table[T]) remove(id int64) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	if i := slices.Index(t.order, id); i >= 0 {
		t.order = slices.Delete(t.order, i, i+1)
	}
	return true
}

func (t *table[T]) filter(keep func(T) bool) []T {
	out := make([]T, 0)
	for _, id := range t.order {
		if row := t.rows[id]; keep(row) {
			out = append(out, t.clone(row))
		}
	}
	return out
}

func (t *table[T]) first(match func(T) bool) (T, bool) {
	for _, id := range t.order {
		if row := t.rows[id]; match(row) {
			return t.clone(row), true
		}
	}
	var zero T
	return zero, false
}

// MemStorage — эталонное хранилище в памяти. Все операции выполняются под одним мьютексом,
// поэтому каскадные эффекты (удаление записи с её расписаниями, смена visibility)
// наблюдаются атомарно. Данные теряются при перезапуске процесса.
type MemStorage struct {
	mu     sync.RWMutex
	policy Policy
	now    func() time.Time

	users      *table[model.User]
	categories *table[model.Category]
	entries    *table[model.Entry]
	contacts   *table[model.Contact]
	schedules  *table[model.Schedule]
}

var _ Storage = (*MemStorage)(nil)

// NewMemStorage создаёт пустое хранилище с заданными правилами целостности.
func NewMemStorage(policy Policy) *MemStorage {
	return &MemStorage{
		policy:     policy,
		now:        func() time.Time { return time.Now().UTC() },
		users:      newTable(model.User.Clone),
		categories: newTable[model.Category](nil),
		entries:    newTable(model.Entry.Clone),
		contacts:   newTable(model.Contact.Clone),
		schedules:  newTable[model.Schedule](nil),
	}
}

// --- users ---

func (s *MemStorage) GetUser(_ context.Context, id int64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users.get(id); ok {
		return &u, nil
	}
	return nil, nil
}

func (s *MemStorage) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users.first(func(u model.User) bool { return u.Username == username }); ok {
		return &u, nil
	}
	return nil, nil
}

func (s *MemStorage) CreateUser(_ context.Context, in model.InsertUser) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.users.first(func(u model.User) bool { return u.Username == in.Username }); taken {
		return nil, ErrDuplicateUsername
	}
	u := s.users.insert(func(id int64) model.User {
		return model.User{
			ID:          id,
			Username:    in.Username,
			Password:    in.Password,
			DisplayName: in.DisplayName,
			Email:       in.Email,
		}
	})
	return &u, nil
}

// --- categories ---

func (s *MemStorage) GetCategory(_ context.Context, id int64) (*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.categories.get(id); ok {
		return &c, nil
	}
	return nil, nil
}

func (s *MemStorage) ListCategories(_ context.Context, userID int64) ([]model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories.filter(func(c model.Category) bool { return c.UserID == userID }), nil
}

func (s *MemStorage) CreateCategory(_ context.Context, in model.InsertCategory) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.categories.insert(func(id int64) model.Category {
		return model.Category{ID: id, UserID: in.UserID, Name: in.Name}
	})
	return &c, nil
}

func (s *MemStorage) UpdateCategory(_ context.Context, id int64, p model.CategoryPatch) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories.get(id)
	if !ok {
		return nil, nil
	}
	p.Apply(&c)
	s.categories.replace(id, c)
	return &c, nil
}

func (s *MemStorage) DeleteCategory(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.categories.remove(id) {
		return false, nil
	}
	if s.policy.CategoryOnDelete == Nullify {
		for _, e := range s.entries.filter(func(e model.Entry) bool { return e.CategoryID != nil && *e.CategoryID == id }) {
			e.CategoryID = nil
			s.entries.replace(e.ID, e)
		}
	}
	return true, nil
}

// --- entries ---

func (s *MemStorage) GetEntry(_ context.Context, id int64) (*model.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entries.get(id); ok {
		return &e, nil
	}
	return nil, nil
}

func (s *MemStorage) ListEntries(_ context.Context, userID int64) ([]model.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listEntries(userID), nil
}

func (s *MemStorage) listEntries(userID int64) []model.Entry {
	return s.entries.filter(func(e model.Entry) bool { return e.UserID == userID })
}

func (s *MemStorage) ListEntriesByType(_ context.Context, userID int64, t model.EntryType) ([]model.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries.filter(func(e model.Entry) bool { return e.UserID == userID && e.Type == t }), nil
}

func (s *MemStorage) ListEntriesByCategory(_ context.Context, userID, categoryID int64) ([]model.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries.filter(func(e model.Entry) bool {
		return e.UserID == userID && e.CategoryID != nil && *e.CategoryID == categoryID
	}), nil
}

func (s *MemStorage) CreateEntry(_ context.Context, in model.InsertEntry) (*model.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entries.insert(func(id int64) model.Entry {
		return model.Entry{
			ID:         id,
			UserID:     in.UserID,
			Title:      in.Title,
			Content:    in.Content,
			MediaURL:   in.MediaURL,
			Type:       in.Type,
			Visibility: model.VisibilityPrivate,
			CategoryID: in.CategoryID,
			Metadata:   in.Metadata,
			CreatedAt:  s.now(),
		}
	})
	return &e, nil
}

func (s *MemStorage) UpdateEntry(_ context.Context, id int64, p model.EntryPatch) (*model.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries.get(id)
	if !ok {
		return nil, nil
	}
	p.Apply(&e)
	s.entries.replace(id, e)
	return &e, nil
}

func (s *MemStorage) DeleteEntry(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.entries.remove(id) {
		return false, nil
	}
	for _, sc := range s.schedules.filter(func(sc model.Schedule) bool { return sc.EntryID == id }) {
		s.schedules.remove(sc.ID)
	}
	return true, nil
}

// setVisibility меняет visibility записи, если она существует.
func (s *MemStorage) setVisibility(entryID int64, v model.Visibility) {
	if e, ok := s.entries.get(entryID); ok {
		e.Visibility = v
		s.entries.replace(entryID, e)
	}
}

// --- contacts ---

func (s *MemStorage) GetContact(_ context.Context, id int64) (*model.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getContact(id), nil
}

func (s *MemStorage) getContact(id int64) *model.Contact {
	if c, ok := s.contacts.get(id); ok {
		return &c
	}
	return nil
}

func (s *MemStorage) ListContacts(_ context.Context, userID int64) ([]model.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contacts.filter(func(c model.Contact) bool { return c.UserID == userID }), nil
}

func (s *MemStorage) CreateContact(_ context.Context, in model.InsertContact) (*model.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.contacts.insert(func(id int64) model.Contact {
		return model.Contact{
			ID:          id,
			UserID:      in.UserID,
			Name:        in.Name,
			PhoneNumber: in.PhoneNumber,
			Email:       in.Email,
		}
	})
	return &c, nil
}

func (s *MemStorage) UpdateContact(_ context.Context, id int64, p model.ContactPatch) (*model.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.contacts.get(id)
	if !ok {
		return nil, nil
	}
	p.Apply(&c)
	s.contacts.replace(id, c)
	return &c, nil
}

func (s *MemStorage) DeleteContact(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.contacts.remove(id) {
		return false, nil
	}
	if s.policy.ContactOnDelete == Cascade {
		for _, sc := range s.schedules.filter(func(sc model.Schedule) bool { return sc.ContactID == id }) {
			s.deleteSchedule(sc)
		}
	}
	return true, nil
}

// --- schedules ---

func (s *MemStorage) GetSchedule(_ context.Context, id int64) (*model.Schedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sc, ok := s.schedules.get(id); ok {
		return &sc, nil
	}
	return nil, nil
}

func (s *MemStorage) ListSchedules(_ context.Context, userID int64) ([]model.Schedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schedules.filter(func(sc model.Schedule) bool {
		e, ok := s.entries.get(sc.EntryID)
		return ok && e.UserID == userID
	}), nil
}

func (s *MemStorage) FindScheduleByEntryID(_ context.Context, entryID int64) (*model.Schedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findScheduleByEntryID(entryID), nil
}

func (s *MemStorage) findScheduleByEntryID(entryID int64) *model.Schedule {
	if sc, ok := s.schedules.first(func(sc model.Schedule) bool { return sc.EntryID == entryID }); ok {
		return &sc
	}
	return nil
}

// CreateSchedule сохраняет расписание и переводит запись в scheduled.
// Расписание для несуществующей записи тоже создаётся.
func (s *MemStorage) CreateSchedule(_ context.Context, in model.InsertSchedule) (*model.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing := s.findScheduleByEntryID(in.EntryID); existing != nil {
		if s.policy.DuplicateSchedule != ReplaceDuplicate {
			return nil, ErrEntryAlreadyScheduled
		}
		s.schedules.remove(existing.ID)
	}
	sc := s.schedules.insert(func(id int64) model.Schedule {
		return model.Schedule{
			ID:              id,
			EntryID:         in.EntryID,
			ContactID:       in.ContactID,
			DeliveryDate:    in.DeliveryDate,
			Status:          model.ScheduleStatusPending,
			ReminderEnabled: in.ReminderEnabled,
			CreatedAt:       s.now(),
		}
	})
	s.setVisibility(in.EntryID, model.VisibilityScheduled)
	return &sc, nil
}

// UpdateSchedule не трогает visibility записи.
func (s *MemStorage) UpdateSchedule(_ context.Context, id int64, p model.SchedulePatch) (*model.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, ok := s.schedules.get(id)
	if !ok {
		return nil, nil
	}
	p.Apply(&sc)
	s.schedules.replace(id, sc)
	return &sc, nil
}

func (s *MemStorage) DeleteSchedule(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, ok := s.schedules.get(id)
	if !ok {
		return false, nil
	}
	s.deleteSchedule(sc)
	return true, nil
}

func (s *MemStorage) deleteSchedule(sc model.Schedule) {
	s.schedules.remove(sc.ID)
	s.setVisibility(sc.EntryID, model.VisibilityPrivate)
}

// --- views ---

// memView даёт composeEntries чтения без повторного захвата мьютекса.
type memView struct{ s *MemStorage }

func (v memView) ListEntries(_ context.Context, userID int64) ([]model.Entry, error) {
	return v.s.listEntries(userID), nil
}

func (v memView) FindScheduleByEntryID(_ context.Context, entryID int64) (*model.Schedule, error) {
	return v.s.findScheduleByEntryID(entryID), nil
}

func (v memView) GetContact(_ context.Context, id int64) (*model.Contact, error) {
	return v.s.getContact(id), nil
}

func (s *MemStorage) EntriesWithSchedules(ctx context.Context, userID int64) ([]model.EntryWithSchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return composeEntries(ctx, memView{s}, userID)
}

func (s *MemStorage) ScheduledEntries(ctx context.Context, userID int64) ([]model.EntryWithSchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	views, err := composeEntries(ctx, memView{s}, userID)
	if err != nil {
		return nil, err
	}
	return onlyScheduled(views), nil
}
