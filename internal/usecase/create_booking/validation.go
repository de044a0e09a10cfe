package create_booking

import (
	"fmt"
	"strings"

	"github.com/quesarica/QR-BookingService/internal/domain"
	"github.com/quesarica/QR-BookingService/internal/pricing"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.EventDate.IsZero() {
		return fmt.Errorf("%w: eventDate is required", ErrInvalidInput)
	}

	if !req.EventTime.IsZero() {
		if err := req.EventTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid eventTime format: %v", ErrInvalidInput, err)
		}
	}

	if strings.TrimSpace(req.EventAddress) == "" {
		return fmt.Errorf("%w: eventAddress is required", ErrInvalidInput)
	}
	if len(req.EventAddress) > domain.MaxAddressLength {
		return fmt.Errorf("%w: eventAddress is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxNameLength {
		return fmt.Errorf("%w: customerName is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerEmail) == "" || !strings.Contains(req.CustomerEmail, "@") {
		return fmt.Errorf("%w: valid customerEmail is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}

	duration := domain.ServiceDuration(req.Duration)
	if !duration.IsValid() {
		return fmt.Errorf("%w: duration must be short or long", ErrInvalidInput)
	}

	if !pricing.IsValidTier(duration, req.GuestCount) {
		return fmt.Errorf("%w: no %s tier for %d guests", ErrInvalidTier, req.Duration, req.GuestCount)
	}

	if !domain.ValidMeatSelection(req.Meats) {
		return fmt.Errorf("%w: exactly %d distinct meat options are required", ErrInvalidInput, domain.MeatSelectionCount)
	}

	if err := validateExtras(req.Extras, req.ExtraFlavors); err != nil {
		return err
	}

	method := domain.PaymentMethod(req.PaymentMethod)
	if method != domain.PaymentCard && method != domain.PaymentCash {
		return fmt.Errorf("%w: paymentMethod must be card or cash", ErrInvalidInput)
	}

	return nil
}

// validateExtras проверяет дополнения и их вкусовые подвыборы
func validateExtras(extras map[string]int, flavors map[string][]string) error {
	for id, qty := range extras {
		if _, ok := pricing.ExtrasCatalog[id]; !ok {
			return fmt.Errorf("%w: unknown extra %q", ErrInvalidInput, id)
		}
		if qty <= 0 {
			return fmt.Errorf("%w: extra %q quantity must be positive", ErrInvalidInput, id)
		}
		if qty > domain.MaxExtraQuantity {
			return fmt.Errorf("%w: extra %q quantity is too large", ErrInvalidInput, id)
		}
	}

	// Вкусы допустимы только для agua fresca и только из известного списка
	for id, list := range flavors {
		if id != domain.AguaFrescaID {
			return fmt.Errorf("%w: flavors are only supported for %s", ErrInvalidInput, domain.AguaFrescaID)
		}
		if _, ok := extras[id]; !ok {
			return fmt.Errorf("%w: flavors given for extra %q that was not ordered", ErrInvalidInput, id)
		}
		for _, flavor := range list {
			if !domain.IsAguaFrescaFlavor(flavor) {
				return fmt.Errorf("%w: unknown agua fresca flavor %q", ErrInvalidInput, flavor)
			}
		}
	}

	return nil
}
