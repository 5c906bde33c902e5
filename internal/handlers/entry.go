package handlers

import (
	"TimeCapsule/internal/model"
	"TimeCapsule/internal/service"
	"net/http"
	"strconv"
)

type createEntryRequest struct {
	Title      string          `json:"title"`
	Content    *string         `json:"content"`
	MediaURL   *string         `json:"mediaUrl"`
	Type       model.EntryType `json:"type"`
	CategoryID *int64          `json:"categoryId"`
	Metadata   *string         `json:"metadata"`
}

type patchEntryRequest struct {
	Title      *string                `json:"title"`
	Content    model.Nullable[string] `json:"content"`
	MediaURL   model.Nullable[string] `json:"mediaUrl"`
	CategoryID model.Nullable[int64]  `json:"categoryId"`
	Metadata   model.Nullable[string] `json:"metadata"`
}

// visibility меняется только через расписания
var (
	entryCreateReadOnly = []string{"id", "userId", "visibility", "createdAt"}
	entryPatchReadOnly  = []string{"id", "userId", "type", "visibility", "createdAt"}
)

// ListEntries поддерживает фильтры ?type= и ?categoryId=.
func (h *JournalHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	var f service.EntryFilter
	q := r.URL.Query()
	if v := q.Get("type"); v != "" {
		t := model.EntryType(v)
		f.Type = &t
	}
	if v := q.Get("categoryId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, r, h.Logger, &service.ValidationError{Field: "categoryId", Message: "must be an integer"})
			return
		}
		f.CategoryID = &id
	}
	list, err := h.JournalService.ListEntries(r.Context(), currentUser(r), f)
	h.respond(w, r, http.StatusOK, list, err)
}

func (h *JournalHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	e, err := h.JournalService.GetEntry(r.Context(), currentUser(r), id)
	h.respond(w, r, http.StatusOK, e, err)
}

func (h *JournalHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := decodeBody(r, &req, entryCreateReadOnly...); err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	e, err := h.JournalService.CreateEntry(r.Context(), currentUser(r), service.EntryInput{
		Title:      req.Title,
		Content:    req.Content,
		MediaURL:   req.MediaURL,
		Type:       req.Type,
		CategoryID: req.CategoryID,
		Metadata:   req.Metadata,
	})
	h.respond(w, r, http.StatusCreated, e, err)
}

func (h *JournalHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	var req patchEntryRequest
	if err := decodeBody(r, &req, entryPatchReadOnly...); err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	e, err := h.JournalService.UpdateEntry(r.Context(), currentUser(r), id, model.EntryPatch{
		Title:      req.Title,
		Content:    req.Content,
		MediaURL:   req.MediaURL,
		CategoryID: req.CategoryID,
		Metadata:   req.Metadata,
	})
	h.respond(w, r, http.StatusOK, e, err)
}

func (h *JournalHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	h.respondDeleted(w, r, h.JournalService.DeleteEntry(r.Context(), currentUser(r), id))
}

func (h *JournalHandler) EntriesWithSchedules(w http.ResponseWriter, r *http.Request) {
	list, err := h.JournalService.EntriesWithSchedules(r.Context(), currentUser(r))
	h.respond(w, r, http.StatusOK, list, err)
}

func (h *JournalHandler) ScheduledEntries(w http.ResponseWriter, r *http.Request) {
	list, err := h.JournalService.ScheduledEntries(r.Context(), currentUser(r))
	h.respond(w, r, http.StatusOK, list, err)
}

func (h *JournalHandler) EntrySchedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	sc, err := h.JournalService.EntrySchedule(r.Context(), currentUser(r), id)
	h.respond(w, r, http.StatusOK, sc, err)
}
