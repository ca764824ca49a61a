package confirm_payment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/internal/integrations/mercadopago"
	"github.com/m04kA/SMC-CourtService/internal/integrations/telegram"
)

// PaymentRepository интерфейс репозитория ожидающих платежей
type PaymentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.PendingPayment, error)
	MarkApproved(ctx context.Context, id int64, mpPaymentID string) error
	MarkRejected(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetActiveByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Booking, error)
}

// CourtRepository интерфейс репозитория квадр
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// PaymentProcessor интерфейс клиента платежного процессора
type PaymentProcessor interface {
	GetPayment(ctx context.Context, paymentID string) (*mercadopago.Payment, error)
}

// AdminNotifier интерфейс уведомлений администратора
type AdminNotifier interface {
	NotifyNewBooking(summary telegram.BookingSummary) error
	NotifySlotLost(pendingID int64, courtName string, date string, slot string) error
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
