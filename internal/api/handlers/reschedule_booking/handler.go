package reschedule_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/quesarica/QR-BookingService/internal/api/handlers"
	"github.com/quesarica/QR-BookingService/internal/usecase/reschedule_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "booking not found"
	msgCancelled          = "booking is cancelled"
	msgInsufficientNotice = "new date is too soon"
	msgDateFullyBooked    = "new date is fully booked"
)

type Handler struct {
	usecase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(usecase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/manage/{token}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	token := vars["token"]

	// Декодируем body
	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/manage/{token}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest(token)
	if err != nil {
		h.logger.Warn("POST /bookings/manage/{token}/reschedule - Invalid request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	resp, err := h.usecase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, reschedule_booking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/manage/{token}/reschedule - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, reschedule_booking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/manage/{token}/reschedule - Booking not found")
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reschedule_booking.ErrBookingCancelled):
			h.logger.Warn("POST /bookings/manage/{token}/reschedule - Booking is cancelled")
			handlers.RespondConflict(w, msgCancelled)

		case errors.Is(err, reschedule_booking.ErrInsufficientNotice):
			h.logger.Warn("POST /bookings/manage/{token}/reschedule - Insufficient notice")
			handlers.RespondBadRequest(w, msgInsufficientNotice)

		case errors.Is(err, reschedule_booking.ErrDateFullyBooked):
			h.logger.Warn("POST /bookings/manage/{token}/reschedule - Date fully booked")
			handlers.RespondConflict(w, msgDateFullyBooked)

		default:
			h.logger.Error("POST /bookings/manage/{token}/reschedule - Failed to reschedule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/manage/{token}/reschedule - Booking rescheduled: id=%d new_date=%s",
		resp.BookingID, resp.NewDate.Format("2006-01-02"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
