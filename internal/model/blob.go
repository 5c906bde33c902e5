package model

import "time"

// Blob — бинарное содержимое медиазаписи (аудио, видео, превью).
type Blob struct {
	ID     string `gorm:"primaryKey;size:36"`
	UserID int64  `gorm:"not null;index"`

	ContentType string `gorm:"not null"`
	Data        []byte `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
