package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ajaxResponse mirrors the success envelope the click script understands.
type ajaxResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log(r).Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.writeJSON(w, r, status, errorResponse{Error: msg})
}

func (h *Handler) ajaxSuccess(w http.ResponseWriter, r *http.Request, data any) {
	h.writeJSON(w, r, http.StatusOK, ajaxResponse{Success: true, Data: data})
}

func (h *Handler) ajaxError(w http.ResponseWriter, r *http.Request, status int, reason string) {
	h.writeJSON(w, r, status, ajaxResponse{Success: false, Data: reason})
}

// internalError logs err and answers with a generic 500.
func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.log(r).Error(msg, slog.Any("error", err))
	h.writeError(w, r, http.StatusInternalServerError, "internal error")
}
