package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hongminglow/casino-api/internal/http/respond"
	"github.com/hongminglow/casino-api/internal/models/dto"
	"github.com/hongminglow/casino-api/internal/storage"
)

const (
	RouteGetBalance    = "GET /api/user/{id}/balance"
	RouteAdjustBalance = "POST /api/user/{id}/balance"
)

// BalanceHandler reads and adjusts user balances. The endpoints are not
// authenticated; any caller can address any id.
type BalanceHandler struct {
	logs  *zap.SugaredLogger
	store storage.UserStore
}

func NewBalanceHandler(logger *zap.SugaredLogger, store storage.UserStore) *BalanceHandler {
	return &BalanceHandler{logs: logger, store: store}
}

func (h *BalanceHandler) Register(r chi.Router) {
	r.Get("/api/user/{id}/balance", h.handleGet)
	r.Post("/api/user/{id}/balance", h.handleAdjust)
}

func (h *BalanceHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		fail(w, r, h.logs, RouteGetBalance, err)
		return
	}

	balance, err := h.store.GetBalance(r.Context(), id)
	if err != nil {
		fail(w, r, h.logs, RouteGetBalance, err)
		return
	}
	respond.JSON(w, dto.BalanceResponse{Success: true, Balance: balance})
}

func (h *BalanceHandler) handleAdjust(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		fail(w, r, h.logs, RouteAdjustBalance, err)
		return
	}

	var req dto.AdjustBalanceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, h.logs, RouteAdjustBalance, err)
		return
	}
	if err := req.Validate(); err != nil {
		fail(w, r, h.logs, RouteAdjustBalance, fmt.Errorf("%w: %v", errAmountRequired, err))
		return
	}

	balance, err := h.store.AdjustBalance(r.Context(), id, *req.Amount)
	if err != nil {
		fail(w, r, h.logs, RouteAdjustBalance, err)
		return
	}
	respond.JSON(w, dto.BalanceResponse{Success: true, Balance: balance})
}

// userID parses the path id. An id that is not an integer cannot name a
// user, so it reads as not found.
func userID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse user id: %w", storage.ErrNotFound)
	}
	return id, nil
}
