package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID int64) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) GetActiveByCourtAndDate(_ context.Context, courtID int64, _ time.Time) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.CourtID == courtID && b.IsActive() {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) GetRecent(_ context.Context, limit int) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if len(result) == limit {
			break
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.BookingCanceled
	return b, nil
}

func TestCancel_ByOwner(t *testing.T) {
	repo := newFakeBookingRepo(&domain.Booking{ID: 1, UserID: 7, Status: domain.BookingActive})
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Cancel(context.Background(), 1, 7, false)
	require.NoError(t, err)
	assert.Equal(t, "CANCELED", resp.Status)
}

func TestCancel_ByAdmin(t *testing.T) {
	repo := newFakeBookingRepo(&domain.Booking{ID: 1, UserID: 7, Status: domain.BookingActive})
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Cancel(context.Background(), 1, 99, true)
	require.NoError(t, err)
	assert.Equal(t, "CANCELED", resp.Status)
}

func TestCancel_ByStrangerDenied(t *testing.T) {
	repo := newFakeBookingRepo(&domain.Booking{ID: 1, UserID: 7, Status: domain.BookingActive})
	svc := NewService(repo, nopLogger{})

	_, err := svc.Cancel(context.Background(), 1, 99, false)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.True(t, repo.bookings[1].IsActive())
}

func TestCancel_AlreadyCanceledIsNoop(t *testing.T) {
	repo := newFakeBookingRepo(&domain.Booking{ID: 1, UserID: 7, Status: domain.BookingCanceled})
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Cancel(context.Background(), 1, 7, false)
	require.NoError(t, err)
	assert.Equal(t, "CANCELED", resp.Status)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), nopLogger{})

	_, err := svc.Cancel(context.Background(), 404, 7, false)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings(t *testing.T) {
	repo := newFakeBookingRepo(
		&domain.Booking{ID: 1, UserID: 7, Status: domain.BookingActive},
		&domain.Booking{ID: 2, UserID: 7, Status: domain.BookingCanceled},
		&domain.Booking{ID: 3, UserID: 8, Status: domain.BookingActive},
	)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), 7)
	require.NoError(t, err)
	// История включает отмененные
	assert.Len(t, resp.Bookings, 2)
}

func TestGetCourtDateBookings_OnlyActive(t *testing.T) {
	repo := newFakeBookingRepo(
		&domain.Booking{ID: 1, CourtID: 1, Status: domain.BookingActive},
		&domain.Booking{ID: 2, CourtID: 1, Status: domain.BookingCanceled},
	)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetCourtDateBookings(context.Background(), 1, time.Now())
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}
