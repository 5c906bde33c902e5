package repo

import (
	"TimeCapsule/internal/model"
	"context"
	"fmt"
)

func (s *gormStorage) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	return findOne[model.Category](s.conn(ctx), "id = ?", id)
}

func (s *gormStorage) ListCategories(ctx context.Context, userID int64) ([]model.Category, error) {
	return findAll[model.Category](s.conn(ctx), "user_id = ?", userID)
}

func (s *gormStorage) CreateCategory(ctx context.Context, in model.InsertCategory) (*model.Category, error) {
	c := &model.Category{UserID: in.UserID, Name: in.Name}
	if err := s.conn(ctx).Create(c).Error; err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (s *gormStorage) UpdateCategory(ctx context.Context, id int64, p model.CategoryPatch) (*model.Category, error) {
	return updateRow[model.Category](ctx, s, id, p)
}

// DeleteCategory удаляет категорию; записи с её id обрабатываются по Policy.CategoryOnDelete.
func (s *gormStorage) DeleteCategory(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := s.inTx(ctx, func(tx *gormStorage) error {
		var err error
		if deleted, err = deleteByID[model.Category](tx.db, id); err != nil || !deleted {
			return err
		}
		if tx.policy.CategoryOnDelete == Nullify {
			return tx.db.Model(&model.Entry{}).Where("category_id = ?", id).Update("category_id", nil).Error
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete category %d: %w", id, err)
	}
	return deleted, nil
}
