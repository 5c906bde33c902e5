package service

import (
	"TimeCapsule/internal/model"
	"context"
	"fmt"
)

func (s *JournalService) ListCategories(ctx context.Context, userID int64) ([]model.Category, error) {
	return s.store.ListCategories(ctx, userID)
}

func (s *JournalService) GetCategory(ctx context.Context, userID, id int64) (*model.Category, error) {
	return s.ownedCategory(ctx, userID, id)
}

func (s *JournalService) CreateCategory(ctx context.Context, userID int64, name string) (*model.Category, error) {
	if blank(name) {
		return nil, invalid("name", "must not be empty")
	}
	c, err := s.store.CreateCategory(ctx, model.InsertCategory{UserID: userID, Name: name})
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (s *JournalService) UpdateCategory(ctx context.Context, userID, id int64, p model.CategoryPatch) (*model.Category, error) {
	if p.Name != nil && blank(*p.Name) {
		return nil, invalid("name", "must not be empty")
	}
	if _, err := s.ownedCategory(ctx, userID, id); err != nil {
		return nil, err
	}
	c, err := s.store.UpdateCategory(ctx, id, p)
	if err != nil {
		return nil, fmt.Errorf("update category %d: %w", id, err)
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *JournalService) DeleteCategory(ctx context.Context, userID, id int64) error {
	if _, err := s.ownedCategory(ctx, userID, id); err != nil {
		return err
	}
	ok, err := s.store.DeleteCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
