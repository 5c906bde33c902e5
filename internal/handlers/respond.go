package handlers

import (
	"TimeCapsule/internal/service"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Message string       `json:"message"`
	Errors  []fieldError `json:"errors,omitempty"`
}

var errInvalidID = errors.New("invalid id")

type badRequestError struct {
	msg string
}

func (e *badRequestError) Error() string { return e.msg }

func badRequest(format string, args ...any) error {
	return &badRequestError{msg: fmt.Sprintf(format, args...)}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError переводит ошибки сервиса в HTTP-статусы.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.SugaredLogger, err error) {
	var (
		verr *service.ValidationError
		berr *badRequestError
	)
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Message: "validation failed",
			Errors:  []fieldError{{Field: verr.Field, Message: verr.Message}},
		})
	case errors.As(err, &berr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: berr.msg})
	case errors.Is(err, errInvalidID):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid id"})
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "not found"})
	case errors.Is(err, service.ErrAlreadyScheduled), errors.Is(err, service.ErrLoginTaken):
		writeJSON(w, http.StatusConflict, errorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrMediaTooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Message: err.Error()})
	default:
		logger.Errorw("request failed", "method", r.Method, "uri", r.RequestURI, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal error"})
	}
}

// pathID достаёт числовой {id} из маршрута.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// decodeBody читает JSON-тело в dst. Ключи из immutable (в любом регистре) приводят к ошибке валидации.
func decodeBody(r *http.Request, dst any, immutable ...string) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return badRequest("cannot read request body")
	}
	if len(immutable) > 0 {
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(body, &keys); err != nil {
			return badRequest("invalid request body")
		}
		// encoding/json сопоставляет ключи без учёта регистра, поэтому и здесь так же
		for key := range keys {
			for _, k := range immutable {
				if strings.EqualFold(key, k) {
					return &service.ValidationError{Field: k, Message: "field is read-only"}
				}
			}
		}
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return badRequest("invalid request body")
	}
	return nil
}
