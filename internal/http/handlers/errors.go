package handlers

import (
	"errors"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hongminglow/casino-api/internal/http/respond"
	"github.com/hongminglow/casino-api/internal/storage"
)

// Request-level failures raised by the handlers themselves.
var (
	errInvalidBody        = errors.New("request body is not valid JSON")
	errSignupFields       = errors.New("signup is missing a required field")
	errLoginFields        = errors.New("login is missing phone or password")
	errAmountRequired     = errors.New("amount is missing")
	errInvalidCredentials = errors.New("phone or password does not match")
)

// Caller-facing messages.
const (
	msgSignupOK           = "Account created successfully"
	msgAllFieldsRequired  = "All fields required"
	msgAlreadyExists      = "Username, email, or phone already exists"
	msgPhonePasswordReq   = "Phone and password required"
	msgInvalidCredentials = "Invalid phone number or password"
	msgUserNotFound       = "User not found"
	msgAmountRequired     = "Amount required"
	msgInvalidBody        = "Invalid request body"
	msgServerError        = "Server error"
)

// classify maps err to the message the caller sees. internal is true when
// the error is unexpected and its detail belongs in the log only.
func classify(err error) (message string, internal bool) {
	switch {
	case errors.Is(err, errInvalidBody):
		return msgInvalidBody, false
	case errors.Is(err, errSignupFields):
		return msgAllFieldsRequired, false
	case errors.Is(err, errLoginFields):
		return msgPhonePasswordReq, false
	case errors.Is(err, errAmountRequired):
		return msgAmountRequired, false
	case errors.Is(err, errInvalidCredentials):
		return msgInvalidCredentials, false
	case errors.Is(err, storage.ErrAlreadyExists):
		return msgAlreadyExists, false
	case errors.Is(err, storage.ErrNotFound):
		return msgUserNotFound, false
	default:
		return msgServerError, true
	}
}

// fail classifies err, logs it when it is internal and writes the failure envelope.
func fail(w http.ResponseWriter, r *http.Request, logs *zap.SugaredLogger, route string, err error) {
	message, internal := classify(err)
	if internal {
		logs.Errorw("request failed",
			"error", err,
			"handler", route,
			"request_id", chimw.GetReqID(r.Context()))
	}
	respond.Failure(w, message)
}
