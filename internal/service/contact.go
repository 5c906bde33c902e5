package service

import (
	"TimeCapsule/internal/model"
	"context"
	"fmt"
)

func (s *JournalService) ListContacts(ctx context.Context, userID int64) ([]model.Contact, error) {
	return s.store.ListContacts(ctx, userID)
}

func (s *JournalService) GetContact(ctx context.Context, userID, id int64) (*model.Contact, error) {
	return s.ownedContact(ctx, userID, id)
}

// ContactInput — данные нового контакта.
type ContactInput struct {
	Name        string
	PhoneNumber *string
	Email       *string
}

func (s *JournalService) CreateContact(ctx context.Context, userID int64, in ContactInput) (*model.Contact, error) {
	if blank(in.Name) {
		return nil, invalid("name", "must not be empty")
	}
	c, err := s.store.CreateContact(ctx, model.InsertContact{
		UserID:      userID,
		Name:        in.Name,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return c, nil
}

func (s *JournalService) UpdateContact(ctx context.Context, userID, id int64, p model.ContactPatch) (*model.Contact, error) {
	if p.Name != nil && blank(*p.Name) {
		return nil, invalid("name", "must not be empty")
	}
	if _, err := s.ownedContact(ctx, userID, id); err != nil {
		return nil, err
	}
	c, err := s.store.UpdateContact(ctx, id, p)
	if err != nil {
		return nil, fmt.Errorf("update contact %d: %w", id, err)
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *JournalService) DeleteContact(ctx context.Context, userID, id int64) error {
	if _, err := s.ownedContact(ctx, userID, id); err != nil {
		return err
	}
	ok, err := s.store.DeleteContact(ctx, id)
	if err != nil {
		return fmt.Errorf("delete contact %d: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
