package handlers

import (
	"TimeCapsule/internal/service"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MediaHandler принимает записанные аудио и видео и отдаёт их обратно.
type MediaHandler struct {
	MediaService *service.MediaService
	Logger       *zap.SugaredLogger
}

func NewMediaHandler(mediaService *service.MediaService, logger *zap.SugaredLogger) *MediaHandler {
	return &MediaHandler{MediaService: mediaService, Logger: logger}
}

type uploadResponse struct {
	ID       string `json:"id"`
	MediaURL string `json:"mediaUrl"`
	Size     int    `json:"size"`
}

// Upload загрузка медиафайла multipart/form-data, поле "file".
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	limit := h.MediaService.MaxBytes()
	// Лимит общего тела запроса: файл плюс заголовки multipart
	r.Body = http.MaxBytesReader(w, r.Body, limit+1*1024*1024)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.Logger.Warnw("Upload: payload too large", "limit", limit)
			writeError(w, r, h.Logger, service.ErrMediaTooLarge)
			return
		}
		h.Logger.Warnw("Upload: invalid multipart form", "error", err)
		writeError(w, r, h.Logger, badRequest("invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, h.Logger, &service.ValidationError{Field: "file", Message: "is required"})
		return
	}
	defer file.Close()

	// читаем на байт больше лимита, чтобы отличить «ровно лимит» от превышения
	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		writeError(w, r, h.Logger, badRequest("failed to read file"))
		return
	}

	blob, err := h.MediaService.Upload(r.Context(), currentUser(r), header.Header.Get("Content-Type"), data)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, uploadResponse{
		ID:       blob.ID,
		MediaURL: "/api/media/" + blob.ID,
		Size:     len(blob.Data),
	})
}

// Get отдаёт медиафайл с сохранённым Content-Type.
func (h *MediaHandler) Get(w http.ResponseWriter, r *http.Request) {
	blob, err := h.MediaService.Get(r.Context(), currentUser(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	w.Header().Set("Content-Type", blob.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(blob.Data)))
	w.Header().Set("Cache-Control", "private, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(blob.Data)
}
