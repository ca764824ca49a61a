package confirm_payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/booking"
	paymentRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-CourtService/internal/integrations/mercadopago"
	"github.com/m04kA/SMC-CourtService/internal/integrations/telegram"
)

// UseCase use case обработки webhook-а платежного процессора
//
// Сигнал верифицируется обратным запросом к процессору: доверяем только
// его ответу, а не содержимому вебхука. Повторные доставки безопасны:
// переход PENDING -> APPROVED выполняется один раз, остальные сигналы
// игнорируются
type UseCase struct {
	paymentRepo PaymentRepository
	bookingRepo BookingRepository
	courtRepo   CourtRepository
	userRepo    UserRepository
	processor   PaymentProcessor
	notifier    AdminNotifier
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	paymentRepo PaymentRepository,
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	userRepo UserRepository,
	processor PaymentProcessor,
	notifier AdminNotifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		userRepo:    userRepo,
		processor:   processor,
		notifier:    notifier,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case подтверждения платежа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmPayment: webhook for mp_payment=%s", req.MPPaymentID)

	if req.MPPaymentID == "" {
		uc.logger.Warn("ConfirmPayment: empty payment id in webhook, ignoring")
		return &Response{Processed: false}, nil
	}

	// 1. Верифицируем сигнал у процессора
	payment, err := uc.processor.GetPayment(ctx, req.MPPaymentID)
	if err != nil {
		if errors.Is(err, mercadopago.ErrPaymentNotFound) {
			uc.logger.Warn("ConfirmPayment: mp_payment=%s unknown to processor, ignoring", req.MPPaymentID)
			return &Response{Processed: false}, nil
		}
		uc.logger.Error("ConfirmPayment: processor error for mp_payment=%s: %v", req.MPPaymentID, err)
		return nil, fmt.Errorf("%w: failed to verify payment: %v", ErrInternal, err)
	}

	// 2. Обрабатываем только подтвержденные платежи
	if !payment.IsApproved() {
		uc.logger.Info("ConfirmPayment: mp_payment=%s status=%s, ignoring", req.MPPaymentID, payment.Status)
		return &Response{Processed: false}, nil
	}

	// 3. external_reference несет наш внутренний ID ожидающего платежа
	pendingID, err := strconv.ParseInt(payment.ExternalReference, 10, 64)
	if err != nil {
		uc.logger.Warn("ConfirmPayment: unparsable external_reference=%q for mp_payment=%s, ignoring",
			payment.ExternalReference, req.MPPaymentID)
		return &Response{Processed: false}, nil
	}

	resp := &Response{}
	var lost []lostSlot

	// 4. Материализация бронирований и переход статуса в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		resp.Processed = false
		resp.CreatedBookings = 0
		resp.SkippedSlots = nil
		lost = nil

		// 4.1. Читаем платеж с блокировкой FOR UPDATE
		pending, err := uc.paymentRepo.GetByID(txCtx, pendingID)
		if err != nil {
			if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
				uc.logger.Warn("ConfirmPayment: pending payment=%d not found, ignoring", pendingID)
				return nil
			}
			return fmt.Errorf("%w: failed to get pending payment: %v", ErrInternal, err)
		}

		// 4.2. Терминальный платеж означает повторную доставку вебхука
		if !pending.IsPending() {
			uc.logger.Info("ConfirmPayment: payment=%d already %s, duplicate webhook ignored", pendingID, pending.Status)
			return nil
		}

		// 4.3. Занятость на момент подтверждения, с блокировкой
		existing, err := uc.bookingRepo.GetActiveByCourtAndDate(txCtx, pending.CourtID, pending.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get existing bookings: %v", ErrInternal, err)
		}

		// 4.4. Создаем бронирования по оплаченным слотам
		// Слот, проигранный конкуренту между initiate и approval, пропускаем:
		// остальные слоты клиент получает, а администратор разбирается с возвратом
		for _, start := range pending.Slots {
			interval, err := domain.NewSlotInterval(start)
			if err != nil {
				uc.logger.Error("ConfirmPayment: payment=%d has invalid slot %q: %v", pendingID, start, err)
				continue
			}

			if len(domain.FindConflicts([]domain.Interval{interval}, existing)) > 0 {
				uc.logger.Warn("ConfirmPayment: payment=%d slot %s lost to concurrent booking", pendingID, start)
				resp.SkippedSlots = append(resp.SkippedSlots, start.String())
				lost = append(lost, lostSlot{pendingID: pendingID, courtID: pending.CourtID, date: pending.Date.Format(domain.DateFormat), slot: start.String()})
				continue
			}

			created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
				UserID:    pending.UserID,
				CourtID:   pending.CourtID,
				Sport:     pending.Sport,
				Date:      pending.Date,
				StartTime: interval.Start,
				EndTime:   interval.End,
				Status:    domain.BookingActive,
			})
			if err != nil {
				if errors.Is(err, bookingRepo.ErrSlotTaken) {
					uc.logger.Warn("ConfirmPayment: payment=%d slot %s lost on insert", pendingID, start)
					resp.SkippedSlots = append(resp.SkippedSlots, start.String())
					lost = append(lost, lostSlot{pendingID: pendingID, courtID: pending.CourtID, date: pending.Date.Format(domain.DateFormat), slot: start.String()})
					continue
				}
				return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
			}

			// Созданный слот занимает место для следующих слотов того же платежа
			existing = append(existing, created)
			resp.CreatedBookings++
		}

		// 4.5. Переводим платеж в APPROVED, даже при частичном исполнении
		if err := uc.paymentRepo.MarkApproved(txCtx, pendingID, req.MPPaymentID); err != nil {
			if errors.Is(err, paymentRepo.ErrNotPending) {
				uc.logger.Info("ConfirmPayment: payment=%d approved concurrently", pendingID)
				return nil
			}
			return fmt.Errorf("%w: failed to mark payment approved: %v", ErrInternal, err)
		}

		resp.Processed = true
		return nil
	})

	if err != nil {
		return nil, err
	}

	if resp.Processed {
		uc.logger.Info("ConfirmPayment: payment=%d approved, bookings=%d, skipped=%d",
			pendingID, resp.CreatedBookings, len(resp.SkippedSlots))

		// Уведомления после коммита, не блокируя ответ процессору
		go uc.notifyAdmin(pendingID, resp.CreatedBookings > 0, lost)
	}

	return resp, nil
}

type lostSlot struct {
	pendingID int64
	courtID   int64
	date      string
	slot      string
}

func (uc *UseCase) notifyAdmin(pendingID int64, anyCreated bool, lost []lostSlot) {
	ctx := context.Background()

	pending, err := uc.paymentRepo.GetByID(ctx, pendingID)
	if err != nil {
		uc.logger.Error("ConfirmPayment: failed to load payment=%d for notification: %v", pendingID, err)
		return
	}

	courtName := fmt.Sprintf("court #%d", pending.CourtID)
	court, err := uc.courtRepo.GetByID(ctx, pending.CourtID)
	if err != nil {
		uc.logger.Error("ConfirmPayment: failed to load court=%d for notification: %v", pending.CourtID, err)
	} else {
		courtName = court.Name
	}

	if anyCreated {
		userName := fmt.Sprintf("user #%d", pending.UserID)
		userEmail := ""
		if user, err := uc.userRepo.GetByID(ctx, pending.UserID); err == nil {
			userName = user.Name
			userEmail = user.Email
		}

		lostSet := make(map[string]struct{}, len(lost))
		for _, l := range lost {
			lostSet[l.slot] = struct{}{}
		}

		// Перечисляем только реально созданные интервалы: оплаченные слоты
		// не обязаны идти подряд, а потерянные уходят отдельным уведомлением
		slots := make([]string, 0, len(pending.Slots))
		for _, start := range pending.Slots {
			if _, skipped := lostSet[start.String()]; skipped {
				continue
			}
			if end, err := start.AddMinutes(domain.SlotDurationMinutes); err == nil {
				slots = append(slots, fmt.Sprintf("%s - %s", start, end))
			}
		}

		err := uc.notifier.NotifyNewBooking(telegram.BookingSummary{
			UserName:  userName,
			UserEmail: userEmail,
			CourtName: courtName,
			Date:      pending.Date.Format(domain.DateFormat),
			Slots:     slots,
		})
		if err != nil {
			uc.logger.Error("ConfirmPayment: failed to notify admin about payment=%d: %v", pendingID, err)
		}
	}

	for _, l := range lost {
		if err := uc.notifier.NotifySlotLost(l.pendingID, courtName, l.date, l.slot); err != nil {
			uc.logger.Error("ConfirmPayment: failed to notify admin about lost slot %s: %v", l.slot, err)
		}
	}
}
