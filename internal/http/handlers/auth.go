package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hongminglow/casino-api/internal/auth"
	"github.com/hongminglow/casino-api/internal/http/respond"
	"github.com/hongminglow/casino-api/internal/models/dto"
	"github.com/hongminglow/casino-api/internal/storage"
)

const (
	RouteSignup = "POST /api/signup"
	RouteLogin  = "POST /api/login"
)

// AuthHandler owns the signup and login endpoints.
type AuthHandler struct {
	logs   *zap.SugaredLogger
	store  storage.UserStore
	hasher *auth.Hasher
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(logger *zap.SugaredLogger, store storage.UserStore, hasher *auth.Hasher) *AuthHandler {
	return &AuthHandler{logs: logger, store: store, hasher: hasher}
}

// Register attaches auth routes to the router.
func (h *AuthHandler) Register(r chi.Router) {
	r.Post("/api/signup", h.handleSignup)
	r.Post("/api/login", h.handleLogin)
}

func (h *AuthHandler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, h.logs, RouteSignup, err)
		return
	}
	if err := req.Validate(); err != nil {
		fail(w, r, h.logs, RouteSignup, fmt.Errorf("%w: %v", errSignupFields, err))
		return
	}

	passwordHash, err := h.hasher.Hash(req.Password)
	if err != nil {
		fail(w, r, h.logs, RouteSignup, fmt.Errorf("hash password: %w", err))
		return
	}

	if _, err := h.store.CreateUser(r.Context(), req.ToUser(passwordHash)); err != nil {
		fail(w, r, h.logs, RouteSignup, err)
		return
	}

	respond.Success(w, msgSignupOK)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, h.logs, RouteLogin, err)
		return
	}
	if err := req.Validate(); err != nil {
		fail(w, r, h.logs, RouteLogin, fmt.Errorf("%w: %v", errLoginFields, err))
		return
	}

	user, err := h.store.FindByPhone(r.Context(), req.Phone)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.hasher.Burn(req.Password)
			fail(w, r, h.logs, RouteLogin, errInvalidCredentials)
			return
		}
		fail(w, r, h.logs, RouteLogin, err)
		return
	}

	ok, err := h.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		fail(w, r, h.logs, RouteLogin, fmt.Errorf("verify password for user %d: %w", user.ID, err))
		return
	}
	if !ok {
		fail(w, r, h.logs, RouteLogin, errInvalidCredentials)
		return
	}

	respond.JSON(w, dto.LoginResponse{Success: true, User: user.Public()})
}
