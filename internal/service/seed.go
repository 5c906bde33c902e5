package service

import (
	"context"
	"fmt"
)

const (
	DemoUsername = "demo"
	DemoPassword = "demo"
)

var (
	demoCategories = []string{"Personal", "Work", "Ideas"}
	demoContacts   = []ContactInput{
		{Name: "Mom", PhoneNumber: strPtr("+1 555 0100")},
		{Name: "Alex", Email: strPtr("alex@example.com")},
		{Name: "Future Me", Email: strPtr("me@example.com")},
	}
)

func strPtr(s string) *string { return &s }

// Seed создаёт демо-пользователя с категориями и контактами. Повторный вызов
// ничего не меняет. Возвращает id демо-пользователя.
func Seed(ctx context.Context, users *UserService, journal *JournalService) (int64, error) {
	existing, err := users.repo.GetUserByUsername(ctx, DemoUsername)
	if err != nil {
		return 0, fmt.Errorf("lookup demo user: %w", err)
	}
	if existing != nil {
		return existing.ID, nil
	}

	u, err := users.Register(ctx, DemoUsername, DemoPassword)
	if err != nil {
		return 0, fmt.Errorf("create demo user: %w", err)
	}
	for _, name := range demoCategories {
		if _, err := journal.CreateCategory(ctx, u.ID, name); err != nil {
			return 0, err
		}
	}
	for _, c := range demoContacts {
		if _, err := journal.CreateContact(ctx, u.ID, c); err != nil {
			return 0, err
		}
	}
	return u.ID, nil
}
