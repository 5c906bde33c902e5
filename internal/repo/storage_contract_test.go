package repo

import (
	"TimeCapsule/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storageFactory создаёт чистое хранилище для одного теста.
type storageFactory func(t *testing.T, p Policy) Storage

func strPtr(s string) *string { return &s }
func idPtr(id int64) *int64   { return &id }

// хелперы для подготовки данных
func mkEntry(t *testing.T, s Storage, userID int64, title string) *model.Entry {
	t.Helper()
	e, err := s.CreateEntry(context.Background(), model.InsertEntry{UserID: userID, Title: title, Type: model.EntryTypeText})
	require.NoError(t, err)
	return e
}

func mkContact(t *testing.T, s Storage, userID int64, name string) *model.Contact {
	t.Helper()
	c, err := s.CreateContact(context.Background(), model.InsertContact{UserID: userID, Name: name, PhoneNumber: strPtr("555-1234")})
	require.NoError(t, err)
	return c
}

func mkSchedule(t *testing.T, s Storage, entryID, contactID int64) *model.Schedule {
	t.Helper()
	sc, err := s.CreateSchedule(context.Background(), model.InsertSchedule{
		EntryID:      entryID,
		ContactID:    contactID,
		DeliveryDate: time.Now().UTC().Add(30 * 24 * time.Hour).Truncate(time.Second),
	})
	require.NoError(t, err)
	return sc
}

func visibilityOf(t *testing.T, s Storage, entryID int64) model.Visibility {
	t.Helper()
	e, err := s.GetEntry(context.Background(), entryID)
	require.NoError(t, err)
	require.NotNil(t, e)
	return e.Visibility
}

// runStorageContract прогоняет общие сценарии против любой реализации Storage.
func runStorageContract(t *testing.T, newStorage storageFactory) {
	ctx := context.Background()

	t.Run("ids increase and are never reused", func(t *testing.T) {
		s := newStorage(t, DefaultPolicy())
		var last int64
		for i := 0; i < 3; i++ {
			e := mkEntry(t, s, 1, "e")
			assert.Greater(t, e.ID, last)
			last = e.ID
		}
		ok, err := s.DeleteEntry(ctx, last)
		require.NoError(t, err)
		require.True(t, ok)

		e := mkEntry(t, s, 1, "after delete")
		assert.Greater(t, e.ID, last)

		// счётчики разных типов независимы
		c, err := s.CreateCategory(ctx, model.InsertCategory{UserID: 1, Name: "c"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), c.ID)
	})

	t.Run("seeded categories listed in insertion order", func(t *testing.T) {
		s := newStorage(t, DefaultPolicy())
		u, err := s.CreateUser(ctx, model.InsertUser{Username: "demo", Password: "x"})
		require.NoError(t, err)
		for _, name := range []string{"Personal", "Work", "Ideas"} {
			_, err := s.CreateCategory(ctx, model.InsertCategory{UserID: u.ID, Name: name})
			require.NoError(t, err)
		}
		_, err = s.CreateCategory(ctx, model.InsertCategory{UserID: u.ID + 100, Name: "Foreign"})
		require.NoError(t, err)

		list, err := s.ListCategories(ctx, u.ID)
		require.NoError(t, err)
		names := make([]string, 0, len(list))
		for _, c := range list {
			names = append(names, c.Name)
		}
		assert.Equal(t, []string{"Personal", "Work", "Ideas"}, names)
	})

	t.Run("create entry applies defaults", func(t *testing.T) {
		s := newStorage(t, DefaultPolicy())
		e, err := s.CreateEntry(ctx, model.InsertEntry{UserID: 1, Title: "Hi", Type: model.EntryTypeText, Content: strPtr("hello")})
		require.NoError(t, err)
		assert.Equal(t, int64(1), e.ID)
		assert.Equal(t, model.VisibilityPrivate, e.Visibility)
		assert.False(t, e.CreatedAt.IsZero())
		assert.Nil(t, e.CategoryID)
		if assert.NotNil(t, e.Content) {
			assert.Equal(t, "hello", *e.Content)
		}

		got, err := s.GetEntry(ctx, e.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Hi", got.Title)
		assert.Equal(t, model.VisibilityPrivate, got.Visibility)
	})

	t.Run("get missing returns nil without error", func(t *testing.T) {
		s := newStorage(t, DefaultPolicy())
		e, err := s.GetEntry(ctx, 42)
		assert.NoError(t, err)
		assert.Nil(t, e)
		sc, err := s.FindScheduleByEntryID(ctx, 42)
		assert.NoError(t, err)
		assert.Nil(t, sc)
		u, err := s.GetUserByUsername(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("schedule create and delete toggle visibility", func(t *testing.T) {
		s := newStorage(t, DefaultPolicy())
		e := mkEntry(t, s, 1, "Hi")
		mom := mkContact(t, s, 1, "Mom")
		sc := mkSchedule(t, s, e.ID, mom.ID)

		assert.Equal(t, model.ScheduleStatusPending, sc.Status)
		assert.False(t, sc.ReminderEnabled)
		assert.Equal(t, model.VisibilityScheduled, visibilityOf(t, s, e.ID))

		ok, err := s.DeleteSchedule(ctx, sc.ID)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, model.VisibilityPrivate, visibilityOf(t, s, e.ID))

		scheduled, err := s.ScheduledEntries(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, scheduled)
	})

	t.Run("schedule update keeps visibility", func(t *testing.T) {
		s := newStorage(t, DefaultPolicy())
		e := mkEntry(t, s, 1, "Hi")
		c1 := mkContact(t, s, 1, "Mom")
		c2 := mkContact(t, s, 1, "Dad")
		sc := mkSchedule(t, s, e.ID, c1.ID)

		when := time.Now().UTC().Add(72 * time.Hour).Truncate(time.Second)
		reminder := true
		updated, err := s.UpdateSchedule(ctx, sc.ID, model.SchedulePatch{ContactID: &c2.ID, DeliveryDate: &when, ReminderEnabled: &reminder})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, c2.ID, updated.ContactID)
		assert.True(t, updated.ReminderEnabled)
		assert.WithinDuration(t, when, updated.DeliveryDate, time.Second)
		assert.Equal(t, e.ID, updated.EntryID)
		assert.Equal(t, model.ScheduleStatusPending, updated.Status)
		assert.Equal(t, model.VisibilityScheduled, visibilityOf(t, s, e.ID))

		missing, err := s.UpdateSchedule(ctx, 999, model.SchedulePatch{ReminderEnabled: &reminder})
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("deleting entry cascades to schedules", func(t *testing.T) {
		s := newStorage(t, DefaultPolicy())
		e := mkEntry(t, s, 1, "Hi")
		c := mkContact(t, s, 1, "Mom")
		sc := mkSchedule(t, s, e.ID, c.ID)

		ok, err := s.DeleteEntry(ctx, e.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := s.GetSchedule(ctx, sc.ID)
		assert.NoError(t, err)
		assert.Nil(t, got)
		byEntry, err := s.FindScheduleByEntryID(ctx, e.ID)
		assert.NoError(t, err)
		assert.Nil(t, byEntry)
	})

	t.Run("delete is idempotent on absence", func(t *testing.T) {
		s := newStorage(t, DefaultPolicy())
		mkEntry(t, s, 1, "first")
		e := mkEntry(t, s, 1, "second")
		require.Equal(t, int64(2), e.ID)

		ok, err := s.DeleteEntry(ctx, 2)
		require.NoError(t, err)
		assert.True(t, ok)
		got, err := s.GetEntry(ctx, 2)
		assert.NoError(t, err)
		assert.Nil(t, got)

		ok, err = s.DeleteEntry(ctx, 2)
		assert.NoError(t, err)
		assert.False(t, ok)

		ok, err = s.DeleteSchedule(ctx, 77)
		assert.NoError(t, err)
		assert.False(t, ok)
		ok, err = s.DeleteCategory(ctx, 77)
		assert.NoError(t, err)
		assert.False(t, ok)
		ok, err = s.DeleteContact(ctx, 77)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("composer joins schedule and contact", func(t *testing.T) {
		s := newStorage(t, DefaultPolicy())
		first := mkEntry(t, s, 1, "first")
		second := mkEntry(t, s, 1, "second")
		mkEntry(t, s, 2, "other user")
		c := mkContact(t, s, 1, "Mom")
		sc := mkSchedule(t, s, second.ID, c.ID)

		views, err := s.EntriesWithSchedules(ctx, 1)
		require.NoError(t, err)
		require.Len(t, views, 2)

		assert.Equal(t, first.ID, views[0].ID)
		assert.Nil(t, views[0].Schedule)

		assert.Equal(t, second.ID, views[1].ID)
		require.NotNil(t, views[1].Schedule)
		assert.Equal(t, sc.ID, views[1].Schedule.ID)
		require.NotNil(t, views[1].Schedule.Contact)
		assert.Equal(t, "Mom", views[1].Schedule.Contact.Name)

		scheduled, err := s.ScheduledEntries(ctx, 1)
		require.NoError(t, err)
		require.Len(t, scheduled, 1)
		for _, v := range scheduled {
			assert.Equal(t, model.VisibilityScheduled, v.Visibility)
			assert.NotNil(t, v.Schedule)
		}
	})

	t.Run("composer tolerates deleted contact", func(t *testing.T) {
		s := newStorage(t, DefaultPolicy())
		e := mkEntry(t, s, 1, "Hi")
		c := mkContact(t, s, 1, "Mom")
		mkSchedule(t, s, e.ID, c.ID)

		ok, err := s.DeleteContact(ctx, c.ID)
		require.NoError(t, err)
		require.True(t, ok)

		views, err := s.EntriesWithSchedules(ctx, 1)
		require.NoError(t, err)
		require.Len(t, views, 1)
		require.NotNil(t, views[0].Schedule)
		assert.Nil(t, views[0].Schedule.Contact)
		assert.Equal(t, c.ID, views[0].Schedule.ContactID)
	})

	t.Run("deleting category leaves entries untouched", func(t *testing.T) {
		s := newStorage(t, DefaultPolicy())
		c, err := s.CreateCategory(ctx, model.InsertCategory{UserID: 1, Name: "Work"})
		require.NoError(t, err)
		e, err := s.CreateEntry(ctx, model.InsertEntry{UserID: 1, Title: "t", Type: model.EntryTypeText, CategoryID: idPtr(c.ID)})
		require.NoError(t, err)

		ok, err := s.DeleteCategory(ctx, c.ID)
		require.NoError(t, err)
		require.True(t, ok)

		got, err := s.GetEntry(ctx, e.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		if assert.NotNil(t, got.CategoryID) {
			assert.Equal(t, c.ID, *got.CategoryID)
		}
	})

	t.Run("nullify policy clears category reference", func(t *testing.T) {
		p := DefaultPolicy()
		p.CategoryOnDelete = Nullify
		s := newStorage(t, p)
		c, err := s.CreateCategory(ctx, model.InsertCategory{UserID: 1, Name: "Work"})
		require.NoError(t, err)
		e, err := s.CreateEntry(ctx, model.InsertEntry{UserID: 1, Title: "t", Type: model.EntryTypeText, CategoryID: idPtr(c.ID)})
		require.NoError(t, err)

		_, err = s.DeleteCategory(ctx, c.ID)
		require.NoError(t, err)

		got, err := s.GetEntry(ctx, e.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Nil(t, got.CategoryID)
	})

	t.Run("cascade policy removes schedules of deleted contact", func(t *testing.T) {
		p := DefaultPolicy()
		p.ContactOnDelete = Cascade
		s := newStorage(t, p)
		e := mkEntry(t, s, 1, "Hi")
		c := mkContact(t, s, 1, "Mom")
		sc := mkSchedule(t, s, e.ID, c.ID)

		_, err := s.DeleteContact(ctx, c.ID)
		require.NoError(t, err)

		got, err := s.GetSchedule(ctx, sc.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Equal(t, model.VisibilityPrivate, visibilityOf(t, s, e.ID))
	})

	t.Run("second schedule for entry is rejected", func(t *testing.T) {
		s := newStorage(t, DefaultPolicy())
		e := mkEntry(t, s, 1, "Hi")
		c := mkContact(t, s, 1, "Mom")
		first := mkSchedule(t, s, e.ID, c.ID)

		_, err := s.CreateSchedule(ctx, model.InsertSchedule{EntryID: e.ID, ContactID: c.ID, DeliveryDate: time.Now().UTC()})
		assert.ErrorIs(t, err, ErrEntryAlreadyScheduled)

		got, err := s.FindScheduleByEntryID(ctx, e.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, first.ID, got.ID)
	})

	t.Run("replace policy swaps the schedule", func(t *testing.T) {
		p := DefaultPolicy()
		p.DuplicateSchedule = ReplaceDuplicate
		s := newStorage(t, p)
		e := mkEntry(t, s, 1, "Hi")
		c := mkContact(t, s, 1, "Mom")
		first := mkSchedule(t, s, e.ID, c.ID)
		second := mkSchedule(t, s, e.ID, c.ID)

		assert.Greater(t, second.ID, first.ID)
		old, err := s.GetSchedule(ctx, first.ID)
		require.NoError(t, err)
		assert.Nil(t, old)
		got, err := s.FindScheduleByEntryID(ctx, e.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, second.ID, got.ID)
		assert.Equal(t, model.VisibilityScheduled, visibilityOf(t, s, e.ID))
	})

	t.Run("schedule for missing entry is stored as orphan", func(t *testing.T) {
		s := newStorage(t, DefaultPolicy())
		c := mkContact(t, s, 1, "Mom")
		sc := mkSchedule(t, s, 404, c.ID)

		got, err := s.GetSchedule(ctx, sc.ID)
		require.NoError(t, err)
		assert.NotNil(t, got)

		ok, err := s.DeleteSchedule(ctx, sc.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("entry patch changes only given fields", func(t *testing.T) {
		s := newStorage(t, DefaultPolicy())
		c, err := s.CreateCategory(ctx, model.InsertCategory{UserID: 1, Name: "Ideas"})
		require.NoError(t, err)
		e, err := s.CreateEntry(ctx, model.InsertEntry{
			UserID:   1,
			Title:    "Hi",
			Type:     model.EntryTypeAudio,
			Content:  strPtr("hello"),
			MediaURL: strPtr("/api/media/abc"),
			Metadata: strPtr(`{"trimStart":1}`),
		})
		require.NoError(t, err)

		title := "Renamed"
		updated, err := s.UpdateEntry(ctx, e.ID, model.EntryPatch{
			Title:      &title,
			Content:    model.Null[string](),
			CategoryID: model.Some(c.ID),
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Nil(t, updated.Content)
		if assert.NotNil(t, updated.CategoryID) {
			assert.Equal(t, c.ID, *updated.CategoryID)
		}

		got, err := s.GetEntry(ctx, e.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Renamed", got.Title)
		assert.Nil(t, got.Content)
		assert.Equal(t, model.EntryTypeAudio, got.Type)
		assert.Equal(t, int64(1), got.UserID)
		assert.WithinDuration(t, e.CreatedAt, got.CreatedAt, time.Second)
		if assert.NotNil(t, got.MediaURL) {
			assert.Equal(t, "/api/media/abc", *got.MediaURL)
		}
		if assert.NotNil(t, got.Metadata) {
			assert.Equal(t, `{"trimStart":1}`, *got.Metadata)
		}

		missing, err := s.UpdateEntry(ctx, 999, model.EntryPatch{Title: &title})
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("category and contact patches", func(t *testing.T) {
		s := newStorage(t, DefaultPolicy())
		cat, err := s.CreateCategory(ctx, model.InsertCategory{UserID: 1, Name: "Work"})
		require.NoError(t, err)
		name := "Job"
		updatedCat, err := s.UpdateCategory(ctx, cat.ID, model.CategoryPatch{Name: &name})
		require.NoError(t, err)
		require.NotNil(t, updatedCat)
		assert.Equal(t, "Job", updatedCat.Name)

		c := mkContact(t, s, 1, "Mom")
		updated, err := s.UpdateContact(ctx, c.ID, model.ContactPatch{PhoneNumber: model.Null[string](), Email: model.Some("mom@example.com")})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Mom", updated.Name)
		assert.Nil(t, updated.PhoneNumber)
		if assert.NotNil(t, updated.Email) {
			assert.Equal(t, "mom@example.com", *updated.Email)
		}

		got, err := s.GetContact(ctx, c.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Nil(t, got.PhoneNumber)

		// пустой патч возвращает запись как есть
		same, err := s.UpdateContact(ctx, c.ID, model.ContactPatch{})
		require.NoError(t, err)
		require.NotNil(t, same)
		assert.Equal(t, "Mom", same.Name)
	})

	t.Run("entries filtered by type and category", func(t *testing.T) {
		s := newStorage(t, DefaultPolicy())
		c, err := s.CreateCategory(ctx, model.InsertCategory{UserID: 1, Name: "Personal"})
		require.NoError(t, err)
		mkEntry(t, s, 1, "text one")
		audio, err := s.CreateEntry(ctx, model.InsertEntry{UserID: 1, Title: "voice", Type: model.EntryTypeAudio, CategoryID: idPtr(c.ID)})
		require.NoError(t, err)
		_, err = s.CreateEntry(ctx, model.InsertEntry{UserID: 2, Title: "foreign voice", Type: model.EntryTypeAudio, CategoryID: idPtr(c.ID)})
		require.NoError(t, err)

		byType, err := s.ListEntriesByType(ctx, 1, model.EntryTypeAudio)
		require.NoError(t, err)
		if assert.Len(t, byType, 1) {
			assert.Equal(t, audio.ID, byType[0].ID)
		}
		videos, err := s.ListEntriesByType(ctx, 1, model.EntryTypeVideo)
		require.NoError(t, err)
		assert.Empty(t, videos)

		byCat, err := s.ListEntriesByCategory(ctx, 1, c.ID)
		require.NoError(t, err)
		if assert.Len(t, byCat, 1) {
			assert.Equal(t, audio.ID, byCat[0].ID)
		}
	})

	t.Run("schedules listed through entry owner", func(t *testing.T) {
		s := newStorage(t, DefaultPolicy())
		mine := mkEntry(t, s, 1, "mine")
		theirs := mkEntry(t, s, 2, "theirs")
		c := mkContact(t, s, 1, "Mom")
		sc := mkSchedule(t, s, mine.ID, c.ID)
		mkSchedule(t, s, theirs.ID, c.ID)

		list, err := s.ListSchedules(ctx, 1)
		require.NoError(t, err)
		if assert.Len(t, list, 1) {
			assert.Equal(t, sc.ID, list[0].ID)
		}
	})

	t.Run("usernames are unique", func(t *testing.T) {
		s := newStorage(t, DefaultPolicy())
		u, err := s.CreateUser(ctx, model.InsertUser{Username: "demo", Password: "hash", DisplayName: strPtr("Demo")})
		require.NoError(t, err)
		assert.Equal(t, int64(1), u.ID)

		_, err = s.CreateUser(ctx, model.InsertUser{Username: "demo", Password: "other"})
		assert.ErrorIs(t, err, ErrDuplicateUsername)

		got, err := s.GetUserByUsername(ctx, "demo")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, u.ID, got.ID)
		byID, err := s.GetUser(ctx, u.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, "demo", byID.Username)
	})
}
