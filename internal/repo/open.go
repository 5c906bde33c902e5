package repo

import "fmt"

// Backend — выбранное хранилище вместе с хранилищем медиаданных.
type Backend struct {
	Storage Storage
	Blobs   BlobRepository
	Kind    string
	close   func() error
}

// Close освобождает соединение с БД, если оно было открыто.
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// Open выбирает хранилище по DSN: пустая строка — память, иначе gorm через InitDB.
func Open(dsn string, policy Policy) (*Backend, error) {
	if dsn == "" {
		return &Backend{
			Storage: NewMemStorage(policy),
			Blobs:   NewMemBlobRepository(),
			Kind:    "memory",
		}, nil
	}

	db, err := InitDB(dsn)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	return &Backend{
		Storage: NewGormStorage(db, policy),
		Blobs:   NewBlobRepository(db),
		Kind:    db.Dialector.Name(),
		close:   sqlDB.Close,
	}, nil
}
