package repo

import (
	"TimeCapsule/internal/model"
	"context"
	"fmt"
)

func (s *gormStorage) GetContact(ctx context.Context, id int64) (*model.Contact, error) {
	return findOne[model.Contact](s.conn(ctx), "id = ?", id)
}

func (s *gormStorage) ListContacts(ctx context.Context, userID int64) ([]model.Contact, error) {
	return findAll[model.Contact](s.conn(ctx), "user_id = ?", userID)
}

func (s *gormStorage) CreateContact(ctx context.Context, in model.InsertContact) (*model.Contact, error) {
	c := &model.Contact{
		UserID:      in.UserID,
		Name:        in.Name,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
	}
	if err := s.conn(ctx).Create(c).Error; err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return c, nil
}

func (s *gormStorage) UpdateContact(ctx context.Context, id int64, p model.ContactPatch) (*model.Contact, error) {
	return updateRow[model.Contact](ctx, s, id, p)
}

// DeleteContact удаляет контакт; расписания на него обрабатываются по Policy.ContactOnDelete.
func (s *gormStorage) DeleteContact(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := s.inTx(ctx, func(tx *gormStorage) error {
		var err error
		if deleted, err = deleteByID[model.Contact](tx.db, id); err != nil || !deleted {
			return err
		}
		if tx.policy.ContactOnDelete != Cascade {
			return nil
		}
		schedules, err := findAll[model.Schedule](tx.db, "contact_id = ?", id)
		if err != nil {
			return err
		}
		for _, sc := range schedules {
			if err := tx.deleteSchedule(sc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete contact %d: %w", id, err)
	}
	return deleted, nil
}
