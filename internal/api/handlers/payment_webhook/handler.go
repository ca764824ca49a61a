package payment_webhook

import (
	"encoding/json"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	confirmPayment "github.com/m04kA/SMC-CourtService/internal/usecase/confirm_payment"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/payments/webhook
//
// Процессору всегда отвечаем 200 "OK": любой другой статус заставляет его
// бесконечно ретраить доставку. Ошибки обработки только логируются,
// повторная доставка того же сигнала безопасна
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	paymentID := h.extractPaymentID(r)
	if paymentID == "" {
		h.logger.Warn("POST /payments/webhook - No payment id in webhook, ignoring")
		handlers.RespondText(w, http.StatusOK, "OK")
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmPayment.Request{MPPaymentID: paymentID})
	if err != nil {
		h.logger.Error("POST /payments/webhook - Failed to process webhook: mp_payment=%s, error=%v",
			paymentID, err)
		handlers.RespondText(w, http.StatusOK, "OK")
		return
	}

	if result.Processed {
		h.logger.Info("POST /payments/webhook - Payment processed: mp_payment=%s, bookings=%d, skipped=%d",
			paymentID, result.CreatedBookings, len(result.SkippedSlots))
	}

	handlers.RespondText(w, http.StatusOK, "OK")
}

// extractPaymentID достает ID платежа из тела или query-параметра
// Процессор шлет вебхуки в обоих форматах
func (h *Handler) extractPaymentID(r *http.Request) string {
	var body WebhookBody
	if err := json.NewDecoder(r.Body).Decode(&body); err == nil && body.Data.ID != "" {
		return body.Data.ID
	}

	if id := r.URL.Query().Get("data.id"); id != "" {
		return id
	}

	return r.URL.Query().Get("id")
}
