package handlers

import (
	"TimeCapsule/internal/model"
	"TimeCapsule/internal/service"
	"net/http"
	"time"
)

type createScheduleRequest struct {
	EntryID         int64     `json:"entryId"`
	ContactID       int64     `json:"contactId"`
	DeliveryDate    time.Time `json:"deliveryDate"`
	ReminderEnabled bool      `json:"reminderEnabled"`
}

type patchScheduleRequest struct {
	ContactID       *int64     `json:"contactId"`
	DeliveryDate    *time.Time `json:"deliveryDate"`
	ReminderEnabled *bool      `json:"reminderEnabled"`
}

var (
	scheduleCreateReadOnly = []string{"id", "status", "createdAt"}
	schedulePatchReadOnly  = []string{"id", "entryId", "status", "createdAt"}
)

func (h *JournalHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	list, err := h.JournalService.ListSchedules(r.Context(), currentUser(r))
	h.respond(w, r, http.StatusOK, list, err)
}

func (h *JournalHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	sc, err := h.JournalService.GetSchedule(r.Context(), currentUser(r), id)
	h.respond(w, r, http.StatusOK, sc, err)
}

func (h *JournalHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req createScheduleRequest
	if err := decodeBody(r, &req, scheduleCreateReadOnly...); err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	sc, err := h.JournalService.CreateSchedule(r.Context(), currentUser(r), service.ScheduleInput{
		EntryID:         req.EntryID,
		ContactID:       req.ContactID,
		DeliveryDate:    req.DeliveryDate,
		ReminderEnabled: req.ReminderEnabled,
	})
	h.respond(w, r, http.StatusCreated, sc, err)
}

func (h *JournalHandler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	var req patchScheduleRequest
	if err := decodeBody(r, &req, schedulePatchReadOnly...); err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	sc, err := h.JournalService.UpdateSchedule(r.Context(), currentUser(r), id, model.SchedulePatch{
		ContactID:       req.ContactID,
		DeliveryDate:    req.DeliveryDate,
		ReminderEnabled: req.ReminderEnabled,
	})
	h.respond(w, r, http.StatusOK, sc, err)
}

func (h *JournalHandler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}
	h.respondDeleted(w, r, h.JournalService.DeleteSchedule(r.Context(), currentUser(r), id))
}
