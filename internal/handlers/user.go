package handlers

import (
	"TimeCapsule/internal/config"
	"TimeCapsule/internal/middleware"
	"TimeCapsule/internal/model"
	"TimeCapsule/internal/service"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler — регистрация, вход и текущий пользователь.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type credentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Register создаёт пользователя и сразу выдаёт cookie сессии.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, h.Logger, err)
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Login, req.Password)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	h.authorize(w, r, user, http.StatusCreated)
}

// Login проверяет логин/пароль и выдаёт cookie сессии.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, h.Logger, err)
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	h.authorize(w, r, user, http.StatusOK)
}

func (h *UserHandler) authorize(w http.ResponseWriter, r *http.Request, user *model.User, status int) {
	if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret); err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	h.Logger.Infow("user authorized", "user_id", user.ID)
	writeJSON(w, status, user)
}

// Me возвращает пользователя запроса.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	user, err := h.UserService.Get(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
