package handlers

import (
	"TimeCapsule/internal/middleware"
	"TimeCapsule/internal/service"
	"net/http"

	"go.uber.org/zap"
)

// JournalHandler — категории, записи, контакты и расписания пользователя.
type JournalHandler struct {
	JournalService *service.JournalService
	Logger         *zap.SugaredLogger
}

func NewJournalHandler(journalService *service.JournalService, logger *zap.SugaredLogger) *JournalHandler {
	return &JournalHandler{JournalService: journalService, Logger: logger}
}

func currentUser(r *http.Request) int64 {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	return userID
}

// respond пишет результат операции сервиса: ошибку или JSON с переданным статусом.
func (h *JournalHandler) respond(w http.ResponseWriter, r *http.Request, status int, v any, err error) {
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, status, v)
}

func (h *JournalHandler) respondDeleted(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
