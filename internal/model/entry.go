package model

import "time"

// EntryType — тип записи дневника. Задаётся при создании и больше не меняется.
type EntryType string

const (
	EntryTypeText  EntryType = "text"
	EntryTypeAudio EntryType = "audio"
	EntryTypeVideo EntryType = "video"
)

// Valid сообщает, является ли тип одним из поддерживаемых.
func (t EntryType) Valid() bool {
	switch t {
	case EntryTypeText, EntryTypeAudio, EntryTypeVideo:
		return true
	}
	return false
}

// Visibility — двухсостоянийный флаг записи: private <-> scheduled.
// Переходы выполняет только координатор расписаний в хранилище.
type Visibility string

const (
	VisibilityPrivate   Visibility = "private"
	VisibilityScheduled Visibility = "scheduled"
)

// Entry — серверная модель записи дневника.
type Entry struct {
	ID     int64 `gorm:"primaryKey" json:"id"`
	UserID int64 `gorm:"not null;index" json:"userId"` // ссылка на users.id

	Title    string  `gorm:"not null" json:"title"`
	Content  *string `json:"content"`
	MediaURL *string `gorm:"column:media_url" json:"mediaUrl"`

	Type       EntryType  `gorm:"not null;index" json:"type"`
	Visibility Visibility `gorm:"not null;default:'private'" json:"visibility"`

	// Ссылка на категорию не проверяется: удаление категории может оставить «висячий» id.
	CategoryID *int64  `gorm:"index" json:"categoryId"`
	Metadata   *string `json:"metadata"` // сериализованный JSON клиента (обрезка, превью)

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// InsertEntry — поля, которые клиент передаёт при создании записи.
type InsertEntry struct {
	UserID     int64
	Title      string
	Content    *string
	MediaURL   *string
	Type       EntryType
	CategoryID *int64
	Metadata   *string
}

// EntryPatch — изменяемые поля записи. id, userId, type, createdAt и visibility
// сюда не входят.
type EntryPatch struct {
	Title      *string
	Content    Nullable[string]
	MediaURL   Nullable[string]
	CategoryID Nullable[int64]
	Metadata   Nullable[string]
}

// Apply переносит заданные поля патча на запись.
func (p EntryPatch) Apply(e *Entry) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	p.Content.ApplyTo(&e.Content)
	p.MediaURL.ApplyTo(&e.MediaURL)
	p.CategoryID.ApplyTo(&e.CategoryID)
	p.Metadata.ApplyTo(&e.Metadata)
}

// Columns возвращает патч в виде карты колонок для gorm Updates.
func (p EntryPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	p.Content.Column(cols, "content")
	p.MediaURL.Column(cols, "media_url")
	p.CategoryID.Column(cols, "category_id")
	p.Metadata.Column(cols, "metadata")
	return cols
}
