package repo

import (
	"TimeCapsule/internal/model"
	"context"
	"fmt"

	"gorm.io/gorm"
)

func (s *gormStorage) GetEntry(ctx context.Context, id int64) (*model.Entry, error) {
	return findOne[model.Entry](s.conn(ctx), "id = ?", id)
}

// ListEntries возвращает записи пользователя в порядке создания.
func (s *gormStorage) ListEntries(ctx context.Context, userID int64) ([]model.Entry, error) {
	return findAll[model.Entry](s.conn(ctx), "user_id = ?", userID)
}

func (s *gormStorage) ListEntriesByType(ctx context.Context, userID int64, t model.EntryType) ([]model.Entry, error) {
	return findAll[model.Entry](s.conn(ctx), "user_id = ? AND type = ?", userID, string(t))
}

func (s *gormStorage) ListEntriesByCategory(ctx context.Context, userID, categoryID int64) ([]model.Entry, error) {
	return findAll[model.Entry](s.conn(ctx), "user_id = ? AND category_id = ?", userID, categoryID)
}

// CreateEntry создаёт запись с visibility=private.
func (s *gormStorage) CreateEntry(ctx context.Context, in model.InsertEntry) (*model.Entry, error) {
	e := &model.Entry{
		UserID:     in.UserID,
		Title:      in.Title,
		Content:    in.Content,
		MediaURL:   in.MediaURL,
		Type:       in.Type,
		Visibility: model.VisibilityPrivate,
		CategoryID: in.CategoryID,
		Metadata:   in.Metadata,
	}
	if err := s.conn(ctx).Create(e).Error; err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	return e, nil
}

func (s *gormStorage) UpdateEntry(ctx context.Context, id int64, p model.EntryPatch) (*model.Entry, error) {
	return updateRow[model.Entry](ctx, s, id, p)
}

// DeleteEntry удаляет запись вместе со всеми её расписаниями.
func (s *gormStorage) DeleteEntry(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := s.inTx(ctx, func(tx *gormStorage) error {
		var err error
		if deleted, err = deleteByID[model.Entry](tx.db, id); err != nil || !deleted {
			return err
		}
		return tx.db.Where("entry_id = ?", id).Delete(&model.Schedule{}).Error
	})
	if err != nil {
		return false, fmt.Errorf("delete entry %d: %w", id, err)
	}
	return deleted, nil
}

// setVisibility меняет visibility записи; для отсутствующей записи ничего не делает.
func setVisibility(db *gorm.DB, entryID int64, v model.Visibility) error {
	return db.Model(&model.Entry{}).Where("id = ?", entryID).Update("visibility", string(v)).Error
}
