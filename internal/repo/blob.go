package repo

import (
	"TimeCapsule/internal/model"
	"bytes"
	"context"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BlobRepository минимальный контракт доступа к медиаданным.
type BlobRepository interface {
	// CreateIfAbsent пытается создать запись. Если существует — ничего не делает.
	// Возвращает created=true если запись была создана в этой операции.
	CreateIfAbsent(ctx context.Context, b *model.Blob) (created bool, err error)
	// Get возвращает blob по id или nil, если его нет.
	Get(ctx context.Context, id string) (*model.Blob, error)
}

type blobRepo struct {
	db *gorm.DB
}

// NewBlobRepository создаёт реализацию репозитория для Blob поверх БД.
func NewBlobRepository(db *gorm.DB) BlobRepository {
	return &blobRepo{db: db}
}

// CreateIfAbsent создает Blob в БД, если его ещё нет.
func (r *blobRepo) CreateIfAbsent(ctx context.Context, b *model.Blob) (bool, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(b)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *blobRepo) Get(ctx context.Context, id string) (*model.Blob, error) {
	var rows []model.Blob
	if err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// memBlobRepo — хранилище медиаданных в памяти для режима без БД.
type memBlobRepo struct {
	mu    sync.RWMutex
	blobs map[string]model.Blob
}

// NewMemBlobRepository создаёт BlobRepository в памяти.
func NewMemBlobRepository() BlobRepository {
	return &memBlobRepo{blobs: make(map[string]model.Blob)}
}

func (r *memBlobRepo) CreateIfAbsent(_ context.Context, b *model.Blob) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blobs[b.ID]; ok {
		return false, nil
	}
	stored := *b
	stored.Data = bytes.Clone(b.Data)
	r.blobs[b.ID] = stored
	return true, nil
}

func (r *memBlobRepo) Get(_ context.Context, id string) (*model.Blob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if b, ok := r.blobs[id]; ok {
		b.Data = bytes.Clone(b.Data)
		return &b, nil
	}
	return nil, nil
}
