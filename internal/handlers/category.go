package handlers

import (
	"TimeCapsule/internal/model"
	"net/http"
)

type categoryRequest struct {
	Name *string `json:"name"`
}

var categoryReadOnly = []string{"id", "userId"}

func (h *JournalHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	list, err := h.JournalService.ListCategories(r.Context(), currentUser(r))
	h.respond(w, r, http.StatusOK, list, err)
}

func (h *JournalHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	c, err := h.JournalService.GetCategory(r.Context(), currentUser(r), id)
	h.respond(w, r, http.StatusOK, c, err)
}

func (h *JournalHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeBody(r, &req, categoryReadOnly...); err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	var name string
	if req.Name != nil {
		name = *req.Name
	}
	c, err := h.JournalService.CreateCategory(r.Context(), currentUser(r), name)
	h.respond(w, r, http.StatusCreated, c, err)
}

func (h *JournalHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	var req categoryRequest
	if err := decodeBody(r, &req, categoryReadOnly...); err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	c, err := h.JournalService.UpdateCategory(r.Context(), currentUser(r), id, model.CategoryPatch{Name: req.Name})
	h.respond(w, r, http.StatusOK, c, err)
}

func (h *JournalHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	h.respondDeleted(w, r, h.JournalService.DeleteCategory(r.Context(), currentUser(r), id))
}
