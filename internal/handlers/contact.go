package handlers

import (
	"TimeCapsule/internal/model"
	"TimeCapsule/internal/service"
	"net/http"
)

type createContactRequest struct {
	Name        string  `json:"name"`
	PhoneNumber *string `json:"phoneNumber"`
	Email       *string `json:"email"`
}

type patchContactRequest struct {
	Name        *string                `json:"name"`
	PhoneNumber model.Nullable[string] `json:"phoneNumber"`
	Email       model.Nullable[string] `json:"email"`
}

var contactReadOnly = []string{"id", "userId"}

func (h *JournalHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	list, err := h.JournalService.ListContacts(r.Context(), currentUser(r))
	h.respond(w, r, http.StatusOK, list, err)
}

func (h *JournalHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	c, err := h.JournalService.GetContact(r.Context(), currentUser(r), id)
	h.respond(w, r, http.StatusOK, c, err)
}

func (h *JournalHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req createContactRequest
	if err := decodeBody(r, &req, contactReadOnly...); err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	c, err := h.JournalService.CreateContact(r.Context(), currentUser(r), service.ContactInput{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	})
	h.respond(w, r, http.StatusCreated, c, err)
}

func (h *JournalHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	var req patchContactRequest
	if err := decodeBody(r, &req, contactReadOnly...); err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	c, err := h.JournalService.UpdateContact(r.Context(), currentUser(r), id, model.ContactPatch{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	})
	h.respond(w, r, http.StatusOK, c, err)
}

func (h *JournalHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	h.respondDeleted(w, r, h.JournalService.DeleteContact(r.Context(), currentUser(r), id))
}
