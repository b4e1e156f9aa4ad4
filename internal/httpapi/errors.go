package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"ondemand-engine/internal/api"
	"ondemand-engine/internal/form"
	"ondemand-engine/internal/store"
)

type APIError struct {
	Error struct {
		Code      string            `json:"code"`
		Message   string            `json:"message"`
		RequestID string            `json:"request_id,omitempty"`
		Fields    map[string]string `json:"fields,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeErrorFields(w, r, status, code, message, nil)
}

func writeErrorFields(w http.ResponseWriter, r *http.Request, status int, code, message string, fields map[string]string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	e.Error.Fields = fields
	WriteJSON(w, status, e)
}

// writeServiceError maps domain and upstream errors onto the envelope.
// Field errors are 400, unreachable upstream is 502, and a server-reported
// failure keeps the upstream status with its message verbatim.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		fe form.Errors
		se *api.ServerError
	)
	switch {
	case errors.As(err, &fe):
		writeErrorFields(w, r, http.StatusBadRequest, "validation_failed", fe.First(), fe)
	case errors.As(err, &se):
		status := se.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		WriteError(w, r, status, "upstream_error", se.Message)
	case errors.Is(err, api.ErrNetwork):
		WriteError(w, r, http.StatusBadGateway, "network_error", api.MsgNetwork)
	case errors.Is(err, store.ErrWorkerNotFound), errors.Is(err, store.ErrCategoryNotFound):
		WriteError(w, r, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		WriteError(w, r, http.StatusServiceUnavailable, "canceled", err.Error())
	default:
		WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
