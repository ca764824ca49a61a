package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetUserBookings возвращает историю бронирований пользователя (включая отмененные)
func (s *Service) GetUserBookings(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookings(bookings), nil
}

// GetCourtDateBookings возвращает АКТИВНЫЕ бронирования квадры на дату
// Используется фронтендом для отображения занятых слотов
func (s *Service) GetCourtDateBookings(ctx context.Context, courtID int64, date time.Time) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.GetActiveByCourtAndDate(ctx, courtID, date)
	if err != nil {
		s.logger.Error("GetCourtDateBookings: repository error for court=%d date=%s: %v",
			courtID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetCourtDateBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookings(bookings), nil
}

// GetRecentForAdmin возвращает последние бронирования всех пользователей
// для админ-панели
func (s *Service) GetRecentForAdmin(ctx context.Context) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.GetRecent(ctx, domain.AdminRecentBookingsLimit)
	if err != nil {
		s.logger.Error("GetRecentForAdmin: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetRecentForAdmin - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookings(bookings), nil
}

// Cancel отменяет бронирование (мягкое удаление, слот освобождается)
// Разрешено владельцу и администратору; повторная отмена идемпотентна
func (s *Service) Cancel(ctx context.Context, bookingID int64, userID int64, isAdmin bool) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	requester := &domain.User{ID: userID}
	if isAdmin {
		requester.Role = domain.RoleAdmin
	}
	if !booking.CanBeCancelledBy(requester) {
		s.logger.Warn("Cancel: user=%d has no rights to cancel booking=%d", userID, bookingID)
		return nil, ErrAccessDenied
	}

	// Уже отмененное бронирование возвращаем как есть
	if booking.IsCanceled() {
		s.logger.Info("Cancel: booking=%d already cancelled, no-op", bookingID)
		return models.FromDomainBooking(booking), nil
	}

	cancelled, err := s.bookingRepo.Cancel(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: failed to cancel booking=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking=%d cancelled by user=%d", bookingID, userID)
	return models.FromDomainBooking(cancelled), nil
}
