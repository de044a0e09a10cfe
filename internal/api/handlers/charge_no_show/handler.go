package charge_no_show

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/quesarica/QR-BookingService/internal/api/handlers"
	"github.com/quesarica/QR-BookingService/internal/usecase/charge_no_show"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgNotFound         = "booking not found"
	msgNotCashBooking   = "no-show fee applies to cash bookings only"
	msgNoCardOnFile     = "no card on file for this booking"
	msgAlreadyCharged   = "no-show fee already charged"
	msgCardDeclined     = "card was declined"
)

type Handler struct {
	usecase ChargeNoShowUseCase
	logger  Logger
}

func NewHandler(usecase ChargeNoShowUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/bookings/{bookingId}/charge-no-show
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /admin/bookings/{id}/charge-no-show - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	resp, err := h.usecase.Execute(r.Context(), &charge_no_show.Request{BookingID: bookingID})
	if err != nil {
		switch {
		case errors.Is(err, charge_no_show.ErrBookingNotFound):
			h.logger.Warn("POST /admin/bookings/{id}/charge-no-show - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, charge_no_show.ErrNotCashBooking):
			h.logger.Warn("POST /admin/bookings/{id}/charge-no-show - Not a cash booking: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgNotCashBooking)

		case errors.Is(err, charge_no_show.ErrNoCardOnFile):
			h.logger.Warn("POST /admin/bookings/{id}/charge-no-show - No card on file: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNoCardOnFile)

		case errors.Is(err, charge_no_show.ErrAlreadyCharged):
			h.logger.Warn("POST /admin/bookings/{id}/charge-no-show - Already charged: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyCharged)

		case errors.Is(err, charge_no_show.ErrCardDeclined):
			h.logger.Warn("POST /admin/bookings/{id}/charge-no-show - Card declined: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgCardDeclined)

		default:
			h.logger.Error("POST /admin/bookings/{id}/charge-no-show - Failed to charge: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/bookings/{id}/charge-no-show - Charged: booking_id=%d fee=%d", bookingID, resp.FeeCents)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
