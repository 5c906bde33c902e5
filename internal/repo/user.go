package repo

import (
	"TimeCapsule/internal/model"
	"context"
	"fmt"
)

func (s *gormStorage) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return findOne[model.User](s.conn(ctx), "id = ?", id)
}

func (s *gormStorage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return findOne[model.User](s.conn(ctx), "username = ?", username)
}

// CreateUser создаёт пользователя; занятый username даёт ErrDuplicateUsername.
func (s *gormStorage) CreateUser(ctx context.Context, in model.InsertUser) (*model.User, error) {
	u := &model.User{
		Username:    in.Username,
		Password:    in.Password,
		DisplayName: in.DisplayName,
		Email:       in.Email,
	}
	err := s.inTx(ctx, func(tx *gormStorage) error {
		existing, err := findOne[model.User](tx.db, "username = ?", in.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrDuplicateUsername
		}
		return tx.db.Create(u).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}
