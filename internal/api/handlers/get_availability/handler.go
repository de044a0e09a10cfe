package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/quesarica/QR-BookingService/internal/api/handlers"
	"github.com/quesarica/QR-BookingService/internal/domain"
	"github.com/quesarica/QR-BookingService/internal/usecase/get_availability"
)

const (
	msgInvalidMonth = "month must be in YYYY-MM format"
)

type Handler struct {
	usecase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(usecase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?month=YYYY-MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		// Без параметра показываем текущий месяц
		monthStr = time.Now().Format(domain.MonthFormat)
	}

	month, err := time.Parse(domain.MonthFormat, monthStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid month %q: %v", monthStr, err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	resp, err := h.usecase.Execute(r.Context(), &get_availability.Request{
		Year:  month.Year(),
		Month: int(month.Month()),
	})
	if err != nil {
		switch {
		case errors.Is(err, get_availability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("GET /availability - Failed to get availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
