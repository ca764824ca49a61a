package initiate_payment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/internal/integrations/mercadopago"
)

// PaymentRepository интерфейс репозитория ожидающих платежей
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.PendingPayment) (*domain.PendingPayment, error)
	SetPreferenceID(ctx context.Context, id int64, preferenceID string) error
	MarkRejected(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActiveByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Booking, error)
}

// CourtRepository интерфейс репозитория квадр
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// PaymentProcessor интерфейс клиента платежного процессора
type PaymentProcessor interface {
	CreatePreference(ctx context.Context, pref *mercadopago.PreferenceRequest) (*mercadopago.PreferenceResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
