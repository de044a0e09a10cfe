package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/quesarica/QR-BookingService/internal/api/handlers"
	"github.com/quesarica/QR-BookingService/internal/usecase/cancel_booking"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgNotFound         = "booking not found"
	msgAlreadyCancelled = "booking is already cancelled"
	msgRefundFailed     = "refund failed, booking was not cancelled"
)

type Handler struct {
	usecase CancelBookingUseCase
	logger  Logger
}

func NewHandler(usecase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/manage/{token}/cancel
// Клиентская отмена по cancel-токену из письма.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	h.execute(w, r, &cancel_booking.Request{Token: vars["token"]}, "POST /bookings/manage/{token}/cancel")
}

// HandleAdmin POST /api/v1/admin/bookings/{bookingId}/cancel
func (h *Handler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /admin/bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	h.execute(w, r, &cancel_booking.Request{BookingID: bookingID, ByOwner: true}, "POST /admin/bookings/{id}/cancel")
}

func (h *Handler) execute(w http.ResponseWriter, r *http.Request, req *cancel_booking.Request, route string) {
	resp, err := h.usecase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, cancel_booking.ErrInvalidInput):
			h.logger.Warn("%s - Validation failed: %v", route, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, cancel_booking.ErrBookingNotFound):
			h.logger.Warn("%s - Booking not found", route)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancel_booking.ErrAlreadyCancelled):
			h.logger.Warn("%s - Already cancelled", route)
			handlers.RespondConflict(w, msgAlreadyCancelled)

		case errors.Is(err, cancel_booking.ErrRefundFailed):
			h.logger.Error("%s - Refund failed: %v", route, err)
			handlers.RespondError(w, http.StatusBadGateway, msgRefundFailed)

		default:
			h.logger.Error("%s - Failed to cancel booking: %v", route, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Booking cancelled: id=%d fee=%d refund=%d",
		route, resp.BookingID, resp.FeeCents, resp.RefundCents)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
