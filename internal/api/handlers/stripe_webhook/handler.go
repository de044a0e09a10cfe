package stripe_webhook

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/quesarica/QR-BookingService/internal/api/handlers"
	"github.com/quesarica/QR-BookingService/internal/integrations/payments"
	"github.com/quesarica/QR-BookingService/internal/usecase/confirm_payment"
)

const (
	msgInvalidPayload   = "invalid payload"
	msgInvalidSignature = "invalid signature"

	eventCheckoutCompleted = "checkout.session.completed"

	// Допустимое расхождение метки времени подписи
	signatureTolerance = 5 * time.Minute

	maxBodySize = 1 << 20 // 1 MiB
)

type Handler struct {
	usecase       ConfirmPaymentUseCase
	webhookSecret string
	logger        Logger
}

// NewHandler создает новый экземпляр обработчика вебхуков.
// Пустой webhookSecret отключает проверку подписи (локальная разработка).
func NewHandler(usecase ConfirmPaymentUseCase, webhookSecret string, logger Logger) *Handler {
	return &Handler{
		usecase:       usecase,
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

// Handle POST /api/v1/payments/webhook
// Провайдер ретраит доставку, поэтому обработка идемпотентна: повторное
// событие по уже подтвержденному бронированию отвечает 200 без изменений.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		h.logger.Warn("POST /payments/webhook - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}
	defer r.Body.Close()

	// Проверяем подпись
	if h.webhookSecret != "" {
		sig := r.Header.Get("Stripe-Signature")
		if err := payments.VerifyWebhookSignature(body, sig, h.webhookSecret, signatureTolerance, time.Now()); err != nil {
			h.logger.Warn("POST /payments/webhook - Signature verification failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSignature)
			return
		}
	}

	var evt event
	if err := json.Unmarshal(body, &evt); err != nil {
		h.logger.Warn("POST /payments/webhook - Failed to parse event: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}

	// Остальные типы событий подтверждаем без обработки
	if evt.Type != eventCheckoutCompleted {
		h.logger.Info("POST /payments/webhook - Ignoring event type=%s", evt.Type)
		handlers.RespondJSON(w, http.StatusOK, nil)
		return
	}

	resp, err := h.usecase.Execute(r.Context(), &confirm_payment.Request{
		SessionID:       evt.Data.Object.ID,
		Mode:            evt.Data.Object.Mode,
		PaymentIntentID: evt.Data.Object.PaymentIntent,
		SetupIntentID:   evt.Data.Object.SetupIntent,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirm_payment.ErrBookingNotFound):
			// Сессия не наша. Отвечаем 200, чтобы провайдер не ретраил.
			h.logger.Warn("POST /payments/webhook - No booking for session=%s", evt.Data.Object.ID)
			handlers.RespondJSON(w, http.StatusOK, nil)

		case errors.Is(err, confirm_payment.ErrInvalidInput):
			h.logger.Warn("POST /payments/webhook - Invalid event: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPayload)

		default:
			// 500 заставит провайдера повторить доставку
			h.logger.Error("POST /payments/webhook - Failed to confirm payment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if resp.Confirmed {
		h.logger.Info("POST /payments/webhook - Booking confirmed: id=%d", resp.BookingID)
	}
	handlers.RespondJSON(w, http.StatusOK, nil)
}
