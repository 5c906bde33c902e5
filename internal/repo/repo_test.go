package repo

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов репозитория.
// У каждого теста своя именованная БД, чтобы счётчики id начинались с 1.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := InitDB("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// одно соединение: in-memory БД живёт, пока оно открыто
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}
