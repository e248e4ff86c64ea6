package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

type gameUseCase interface {
	CreateSession(ctx context.Context) (*entity.Snapshot, error)
	GetState(ctx context.Context, id string) (*entity.Snapshot, error)
	Tap(ctx context.Context, id string, position int) (*entity.Snapshot, error)
	PlayAgain(ctx context.Context, id string) (*entity.Snapshot, error)
	DeleteSession(ctx context.Context, id string) error
}

// maxTapBodySize - upper bound for a tap request body in bytes.
const maxTapBodySize = 1 << 10

type tapRequest struct {
	Position *int `json:"position"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handlers struct {
	logger *slog.Logger
	uGame  gameUseCase
}

func NewHandlers(logger *slog.Logger, uGame gameUseCase) *Handlers {
	return &Handlers{
		logger: logger.With("component", "rest"),
		uGame:  uGame,
	}
}

func (that *Handlers) CreateSession(w http.ResponseWriter, r *http.Request) {
	snapshot, err := that.uGame.CreateSession(r.Context())
	if err != nil {
		that.writeError(w, "CreateSession", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, snapshot)
}

func (that *Handlers) GetSession(w http.ResponseWriter, r *http.Request) {
	snapshot, err := that.uGame.GetState(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "GetSession", err)
		return
	}

	that.writeJSON(w, http.StatusOK, snapshot)
}

func (that *Handlers) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := that.uGame.DeleteSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, "DeleteSession", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Handlers) Tap(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxTapBodySize)

	var req tapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Position == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "position is required"})
		return
	}

	snapshot, err := that.uGame.Tap(r.Context(), chi.URLParam(r, "id"), *req.Position)
	if err != nil {
		that.writeError(w, "Tap", err)
		return
	}

	that.writeJSON(w, http.StatusOK, snapshot)
}

func (that *Handlers) PlayAgain(w http.ResponseWriter, r *http.Request) {
	snapshot, err := that.uGame.PlayAgain(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "PlayAgain", err)
		return
	}

	that.writeJSON(w, http.StatusOK, snapshot)
}

func (that *Handlers) writeError(w http.ResponseWriter, method string, err error) {
	switch {
	case errors.Is(err, apperror.ErrSessionNotFound):
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: apperror.ErrSessionNotFound.Error()})
	case errors.Is(err, apperror.ErrInvalidCell), errors.Is(err, apperror.ErrSessionIDRequired):
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		that.logger.Error("request failed", "method", method, "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
	}
}

func (that *Handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
