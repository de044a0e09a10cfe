package create_booking

import (
	"errors"
	"net/http"

	"github.com/quesarica/QR-BookingService/internal/api/handlers"
	"github.com/quesarica/QR-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidTier         = "guest count does not match a pricing tier"
	msgInsufficientNotice  = "event date is too soon"
	msgDateFullyBooked     = "selected date is fully booked"
	msgPaymentProviderDown = "payment provider is unavailable, try again later"
)

type Handler struct {
	usecase CreateBookingUseCase
	logger  Logger
}

func NewHandler(usecase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем body
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем в модель usecase
	ucReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	// Создаем бронирование
	resp, err := h.usecase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, create_booking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, create_booking.ErrInvalidTier):
			h.logger.Warn("POST /bookings - Invalid tier: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTier)

		case errors.Is(err, create_booking.ErrInsufficientNotice):
			h.logger.Warn("POST /bookings - Insufficient notice: %v", err)
			handlers.RespondBadRequest(w, msgInsufficientNotice)

		case errors.Is(err, create_booking.ErrDateFullyBooked):
			h.logger.Warn("POST /bookings - Date fully booked: %v", err)
			handlers.RespondConflict(w, msgDateFullyBooked)

		case errors.Is(err, create_booking.ErrPaymentProvider):
			h.logger.Error("POST /bookings - Payment provider error: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentProviderDown)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%d reference=%s", resp.ID, resp.Reference)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
