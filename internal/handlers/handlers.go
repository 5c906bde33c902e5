package handlers

import (
	"TimeCapsule/internal/config"
	"TimeCapsule/internal/middleware"
	"TimeCapsule/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров. demoUserID используется только в демо-режиме.
func NewHandler(
	userService *service.UserService,
	journalService *service.JournalService,
	mediaService *service.MediaService,
	logger *zap.SugaredLogger,
	config *config.Config,
	demoUserID int64,
) *Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(middleware.WithCORS(config.AllowedOrigins()))
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))
	if config.DemoMode && demoUserID > 0 {
		r.Use(middleware.WithDefaultUser(demoUserID))
	}

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	journalHandler := NewJournalHandler(journalService, logger)
	mediaHandler := NewMediaHandler(mediaService, logger)

	r.Get("/api/health", Health)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)

		r.Get("/api/user/me", userHandler.Me)

		r.Route("/api/categories", func(r chi.Router) {
			r.Get("/", journalHandler.ListCategories)
			r.Post("/", journalHandler.CreateCategory)
			r.Get("/{id}", journalHandler.GetCategory)
			r.Patch("/{id}", journalHandler.UpdateCategory)
			r.Delete("/{id}", journalHandler.DeleteCategory)
		})

		r.Route("/api/entries", func(r chi.Router) {
			r.Get("/", journalHandler.ListEntries)
			r.Post("/", journalHandler.CreateEntry)
			r.Get("/with-schedules", journalHandler.EntriesWithSchedules)
			r.Get("/scheduled", journalHandler.ScheduledEntries)
			r.Get("/{id}", journalHandler.GetEntry)
			r.Patch("/{id}", journalHandler.UpdateEntry)
			r.Delete("/{id}", journalHandler.DeleteEntry)
			r.Get("/{id}/schedule", journalHandler.EntrySchedule)
		})

		r.Route("/api/contacts", func(r chi.Router) {
			r.Get("/", journalHandler.ListContacts)
			r.Post("/", journalHandler.CreateContact)
			r.Get("/{id}", journalHandler.GetContact)
			r.Patch("/{id}", journalHandler.UpdateContact)
			r.Delete("/{id}", journalHandler.DeleteContact)
		})

		r.Route("/api/schedules", func(r chi.Router) {
			r.Get("/", journalHandler.ListSchedules)
			r.Post("/", journalHandler.CreateSchedule)
			r.Get("/{id}", journalHandler.GetSchedule)
			r.Patch("/{id}", journalHandler.UpdateSchedule)
			r.Delete("/{id}", journalHandler.DeleteSchedule)
		})

		r.Post("/api/media", mediaHandler.Upload)
		r.Get("/api/media/{id}", mediaHandler.Get)
	})

	return &Handler{Router: r}
}

// Health — проверка живости.
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
