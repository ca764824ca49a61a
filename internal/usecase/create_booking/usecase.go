package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtService/internal/integrations/telegram"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	courtRepo   CourtRepository
	notifier    AdminNotifier
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	notifier AdminNotifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		notifier:    notifier,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Занятость слота проверяется и фиксируется в сериализуемой транзакции
// с блокировкой существующих бронирований пары (court, date). Частичный
// уникальный индекс по активным бронированиям добивает гонки, которые
// не поймала блокировка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, court=%d, date=%s, time=%s-%s",
		req.UserID, req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование квадры (имя нужно для уведомления)
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 3. Проверка занятости и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Активные бронирования пары (court, date) с блокировкой FOR UPDATE
		existing, err := uc.bookingRepo.GetActiveByCourtAndDate(txCtx, req.CourtID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get existing bookings: %v", err)
			return fmt.Errorf("%w: failed to get existing bookings: %v", ErrInternal, err)
		}

		// 3.2. Проверяем пересечение запрошенного интервала с занятыми
		candidate := domain.Interval{Start: req.StartTime, End: req.EndTime}
		conflicts := domain.FindConflicts([]domain.Interval{candidate}, existing)
		if len(conflicts) > 0 {
			uc.logger.Warn("CreateBooking: slot %s-%s on court=%d date=%s is taken",
				req.StartTime, req.EndTime, req.CourtID, req.Date.Format(domain.DateFormat))
			return ErrSlotTaken
		}

		// 3.3. Создаем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:    req.UserID,
			CourtID:   req.CourtID,
			Sport:     domain.Sport(req.Sport),
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Status:    domain.BookingActive,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 4. Уведомляем администратора после коммита, не блокируя ответ
	// Сбой уведомления не влияет на результат операции
	go uc.notifyAdmin(req, court)

	return &Response{
		ID:          result.ID,
		UserID:      result.UserID,
		CourtID:     result.CourtID,
		Sport:       string(result.Sport),
		BookingDate: result.Date,
		StartTime:   result.StartTime,
		EndTime:     result.EndTime,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}

func (uc *UseCase) notifyAdmin(req *Request, court *domain.Court) {
	err := uc.notifier.NotifyNewBooking(telegram.BookingSummary{
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
		CourtName: court.Name,
		Date:      req.Date.Format(domain.DateFormat),
		Slots:     []string{fmt.Sprintf("%s - %s", req.StartTime, req.EndTime)},
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to notify admin: %v", err)
	}
}
