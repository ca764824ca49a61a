package list_bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/service/bookings/models"
)

type BookingService interface {
	GetUserBookings(ctx context.Context, userID int64) (*models.BookingListResponse, error)
	GetCourtDateBookings(ctx context.Context, courtID int64, date time.Time) (*models.BookingListResponse, error)
	GetRecentForAdmin(ctx context.Context) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
