package initiate_payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtService/internal/integrations/mercadopago"
)

// UseCase use case для создания платежной сессии
//
// Бронирования на этом шаге НЕ создаются: они материализуются webhook-ом
// после подтверждения оплаты процессором. До подтверждения слоты не
// зарезервированы и могут быть заняты конкурентами
type UseCase struct {
	paymentRepo PaymentRepository
	bookingRepo BookingRepository
	courtRepo   CourtRepository
	processor   PaymentProcessor
	frontendURL string
	backendURL  string
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	paymentRepo PaymentRepository,
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	processor PaymentProcessor,
	frontendURL string,
	backendURL string,
	logger Logger,
) *UseCase {
	return &UseCase{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		processor:   processor,
		frontendURL: frontendURL,
		backendURL:  backendURL,
		logger:      logger,
	}
}

// Execute выполняет use case создания платежной сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("InitiatePayment: user=%d, court=%d, date=%s, slots=%d",
		req.UserID, req.CourtID, req.Date.Format(domain.DateFormat), len(req.Slots))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("InitiatePayment: validation failed: %v", err)
		return nil, err
	}

	// 2. Квадра должна существовать, цена нужна для суммы
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("InitiatePayment: court=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("InitiatePayment: failed to get court=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	totalAmount := court.PricePerHour * int64(len(req.Slots))
	if totalAmount <= 0 {
		uc.logger.Warn("InitiatePayment: non-positive total amount %d for court=%d", totalAmount, req.CourtID)
		return nil, fmt.Errorf("%w: total amount must be positive", ErrInvalidInput)
	}

	// 3. Рекомендательная проверка занятости: отсекаем заведомо конфликтные
	// запросы до оплаты. Гонку до webhook она не закрывает
	candidates, err := slotIntervals(req.Slots)
	if err != nil {
		return nil, err
	}

	existing, err := uc.bookingRepo.GetActiveByCourtAndDate(ctx, req.CourtID, req.Date)
	if err != nil {
		uc.logger.Error("InitiatePayment: failed to get existing bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get existing bookings: %v", ErrInternal, err)
	}

	conflicts := domain.FindConflicts(candidates, existing)
	if len(conflicts) > 0 {
		uc.logger.Warn("InitiatePayment: slot %s on court=%d date=%s is taken",
			conflicts[0].Start, req.CourtID, req.Date.Format(domain.DateFormat))
		return nil, &SlotTakenError{Slot: conflicts[0].Start.String()}
	}

	// 4. Фиксируем намерение оплаты в статусе PENDING
	pending, err := uc.paymentRepo.Create(ctx, &domain.PendingPayment{
		UserID:      req.UserID,
		CourtID:     req.CourtID,
		Sport:       domain.Sport(req.Sport),
		Date:        req.Date,
		Slots:       req.Slots,
		TotalAmount: totalAmount,
		Status:      domain.PaymentPending,
	})
	if err != nil {
		uc.logger.Error("InitiatePayment: failed to create pending payment: %v", err)
		return nil, fmt.Errorf("%w: failed to create pending payment: %v", ErrInternal, err)
	}

	// 5. Создаем checkout preference у процессора
	preference, err := uc.processor.CreatePreference(ctx, uc.buildPreference(req, court, pending))
	if err != nil {
		// Платеж без preference бесполезен, переводим в REJECTED
		if rejErr := uc.paymentRepo.MarkRejected(ctx, pending.ID); rejErr != nil {
			uc.logger.Error("InitiatePayment: failed to reject payment=%d after upstream error: %v", pending.ID, rejErr)
		}
		uc.logger.Error("InitiatePayment: processor error for payment=%d: %v", pending.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if err := uc.paymentRepo.SetPreferenceID(ctx, pending.ID, preference.ID); err != nil {
		uc.logger.Error("InitiatePayment: failed to store preference id for payment=%d: %v", pending.ID, err)
		return nil, fmt.Errorf("%w: failed to store preference id: %v", ErrInternal, err)
	}

	uc.logger.Info("InitiatePayment: payment=%d preference=%s created, total=%d",
		pending.ID, preference.ID, totalAmount)

	return &Response{
		PendingPaymentID: pending.ID,
		InitPoint:        preference.RedirectURL(),
		TotalAmount:      totalAmount,
	}, nil
}

func (uc *UseCase) buildPreference(req *Request, court *domain.Court, pending *domain.PendingPayment) *mercadopago.PreferenceRequest {
	description := fmt.Sprintf("%d hora(s) • %s • %s",
		len(req.Slots), req.Sport, req.Date.Format(domain.DateFormat))

	return &mercadopago.PreferenceRequest{
		Items: []mercadopago.PreferenceItem{
			{
				ID:          strconv.FormatInt(court.ID, 10),
				Title:       "A Beach Arena - " + court.Name,
				Description: description,
				Quantity:    1,
				CurrencyID:  "BRL",
				UnitPrice:   pending.TotalAmount,
			},
		},
		Payer:             mercadopago.PreferencePayer{Email: req.UserEmail},
		ExternalReference: strconv.FormatInt(pending.ID, 10),
		BackURLs: mercadopago.PreferenceBackURLs{
			Success: uc.frontendURL + "/payment/success",
			Failure: uc.frontendURL + "/payment/failure",
			Pending: uc.frontendURL + "/payment/pending",
		},
		AutoReturn:      "approved",
		NotificationURL: uc.backendURL + "/api/payments/webhook",
	}
}
