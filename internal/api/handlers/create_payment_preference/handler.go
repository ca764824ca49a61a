package create_payment_preference

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	initiatePayment "github.com/m04kA/SMC-CourtService/internal/usecase/initiate_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrSlots = "некорректный формат даты или слотов, ожидается YYYY-MM-DD и HH:MM"
	msgSlotTaken          = "один из выбранных слотов уже занят"
	msgSlotTakenFmt       = "слот %s уже занят"
	msgCourtNotFound      = "квадра не найдена"
	msgInvalidInput       = "некорректные данные платежа"
	msgUpstream           = "платежный сервис временно недоступен"
	msgUnauthorized       = "требуется аутентификация"
)

type Handler struct {
	useCase InitiatePaymentUseCase
	logger  Logger
}

func NewHandler(useCase InitiatePaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/payments/create-preference
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.CurrentUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreatePreferenceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/create-preference - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(claims)
	if err != nil {
		h.logger.Warn("POST /payments/create-preference - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrSlots)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, initiatePayment.ErrSlotTaken):
			h.logger.Warn("POST /payments/create-preference - Slot taken: user_id=%d, court_id=%d",
				claims.UserID, req.CourtID)

			// Клиенту называем конкретный занятый слот
			msg := msgSlotTaken
			var slotErr *initiatePayment.SlotTakenError
			if errors.As(err, &slotErr) {
				msg = fmt.Sprintf(msgSlotTakenFmt, slotErr.Slot)
			}
			handlers.RespondConflict(w, msg)

		case errors.Is(err, initiatePayment.ErrCourtNotFound):
			h.logger.Warn("POST /payments/create-preference - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, initiatePayment.ErrInvalidInput):
			h.logger.Warn("POST /payments/create-preference - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, initiatePayment.ErrUpstream):
			h.logger.Error("POST /payments/create-preference - Processor error: user_id=%d, error=%v",
				claims.UserID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstream)

		default:
			h.logger.Error("POST /payments/create-preference - Failed to initiate payment: user_id=%d, error=%v",
				claims.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/create-preference - Payment initiated: payment_id=%d, user_id=%d, total=%d",
		result.PendingPaymentID, claims.UserID, result.TotalAmount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
