package service

import (
	"TimeCapsule/internal/model"
	"TimeCapsule/internal/repo"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MediaService хранит записанные клиентом аудио и видео.
type MediaService struct {
	blobs    repo.BlobRepository
	maxBytes int64
	logger   *zap.SugaredLogger
}

func NewMediaService(blobs repo.BlobRepository, maxBytes int64, logger *zap.SugaredLogger) *MediaService {
	return &MediaService{blobs: blobs, maxBytes: maxBytes, logger: logger}
}

// MaxBytes — лимит размера одного файла.
func (s *MediaService) MaxBytes() int64 {
	return s.maxBytes
}

// Upload сохраняет медиаданные под новым uuid.
func (s *MediaService) Upload(ctx context.Context, userID int64, contentType string, data []byte) (*model.Blob, error) {
	if s.blobs == nil {
		return nil, errors.New("blob repository is not configured")
	}
	if len(data) == 0 {
		return nil, invalid("file", "must not be empty")
	}
	if int64(len(data)) > s.maxBytes {
		return nil, ErrMediaTooLarge
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	b := &model.Blob{
		ID:          uuid.NewString(),
		UserID:      userID,
		ContentType: contentType,
		Data:        data,
	}
	created, err := s.blobs.CreateIfAbsent(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("save blob: %w", err)
	}
	if !created {
		// uuid повторился, что практически невозможно
		return nil, fmt.Errorf("blob %s already exists", b.ID)
	}
	s.logger.Debugw("media stored", "blobID", b.ID, "size", len(data), "contentType", contentType)
	return b, nil
}

// Get возвращает медиаданные владельца.
func (s *MediaService) Get(ctx context.Context, userID int64, id string) (*model.Blob, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	b, err := s.blobs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil || b.UserID != userID {
		return nil, ErrNotFound
	}
	return b, nil
}
