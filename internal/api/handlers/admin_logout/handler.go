package admin_logout

import (
	"net/http"

	"github.com/quesarica/QR-BookingService/internal/api/handlers"
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

// Handle POST /api/v1/admin/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("X-Admin-Token")

	if err := h.auth.Logout(r.Context(), token); err != nil {
		h.logger.Error("POST /admin/logout - Failed to logout: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/logout - Session revoked")
	handlers.RespondJSON(w, http.StatusOK, nil)
}
