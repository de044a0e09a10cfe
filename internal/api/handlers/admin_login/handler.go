package admin_login

import (
	"errors"
	"net/http"

	"github.com/quesarica/QR-BookingService/internal/api/handlers"
	"github.com/quesarica/QR-BookingService/internal/service/adminauth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidCredentials = "invalid credentials"
)

type Handler struct {
	auth   AuthService
	logger Logger
}

func NewHandler(auth AuthService, logger Logger) *Handler {
	return &Handler{
		auth:   auth,
		logger: logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	token, expiresAt, err := h.auth.Login(r.Context(), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, adminauth.ErrInvalidCredentials):
			h.logger.Warn("POST /admin/login - Invalid credentials")
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
		default:
			h.logger.Error("POST /admin/login - Failed to login: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/login - Session created")
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{Token: token, ExpiresAt: expiresAt})
}
