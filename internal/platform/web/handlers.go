package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/tui-tictactoe/internal/engine"
)

type handlers struct {
	svc *Service
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body", nil)
		return
	}

	mode, err := engine.ParseMode(req.Mode)
	if err != nil {
		writeEngineError(w, err, nil)
		return
	}
	difficulty, err := engine.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeEngineError(w, err, nil)
		return
	}

	v, err := h.svc.Create(req.GridSize, mode, difficulty)
	if err != nil {
		writeEngineError(w, err, nil)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (h *handlers) get(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeEngineError(w, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *handlers) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(chi.URLParam(r, "id")); err != nil {
		writeEngineError(w, err, nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) move(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Index == nil {
		writeError(w, http.StatusBadRequest, "body must be {\"index\": <cell>}", nil)
		return
	}

	v, ev, err := h.svc.Move(chi.URLParam(r, "id"), *req.Index)
	if err != nil {
		writeEngineError(w, err, &v)
		return
	}
	writeJSON(w, http.StatusOK, MoveResponse{State: v, Event: newEventView(ev)})
}

func (h *handlers) resetRound(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.ResetRound(chi.URLParam(r, "id"))
	if err != nil {
		writeEngineError(w, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *handlers) resetSession(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.ResetSession(chi.URLParam(r, "id"))
	if err != nil {
		writeEngineError(w, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// writeEngineError maps service errors to status codes. A rejected move
// carries the unchanged state when one is known.
func writeEngineError(w http.ResponseWriter, err error, state *GameView) {
	if state != nil && state.ID == "" {
		state = nil
	}

	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, engine.ErrInvalidConfig):
		writeError(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, engine.ErrInvalidMove):
		writeError(w, http.StatusConflict, err.Error(), state)
	default:
		writeError(w, http.StatusInternalServerError, err.Error(), nil)
	}
}

func writeError(w http.ResponseWriter, status int, msg string, state *GameView) {
	writeJSON(w, status, ErrorResponse{Error: msg, State: state})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
