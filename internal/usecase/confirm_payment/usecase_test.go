package confirm_payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	paymentRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/payment"
	userRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CourtService/internal/integrations/mercadopago"
	"github.com/m04kA/SMC-CourtService/internal/integrations/telegram"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakePaymentRepo struct {
	payment     *domain.PendingPayment
	approvedID  string
	markedCount int
}

func (f *fakePaymentRepo) GetByID(_ context.Context, id int64) (*domain.PendingPayment, error) {
	if f.payment == nil || f.payment.ID != id {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	return f.payment, nil
}

func (f *fakePaymentRepo) MarkApproved(_ context.Context, _ int64, mpPaymentID string) error {
	if f.payment.Status != domain.PaymentPending {
		return paymentRepo.ErrNotPending
	}
	f.payment.Status = domain.PaymentApproved
	f.approvedID = mpPaymentID
	f.markedCount++
	return nil
}

func (f *fakePaymentRepo) MarkRejected(context.Context, int64) error {
	f.payment.Status = domain.PaymentRejected
	return nil
}

type fakeBookingRepo struct {
	existing []*domain.Booking
	created  []*domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	created := *b
	created.ID = f.nextID
	f.created = append(f.created, &created)
	return &created, nil
}

func (f *fakeBookingRepo) GetActiveByCourtAndDate(context.Context, int64, time.Time) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakeCourtRepo struct{}

func (fakeCourtRepo) GetByID(_ context.Context, id int64) (*domain.Court, error) {
	if id != 1 {
		return nil, courtRepo.ErrCourtNotFound
	}
	return &domain.Court{ID: 1, Name: "Quadra JJ", PricePerHour: 80}, nil
}

type fakeUserRepo struct{}

func (fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if id != 7 {
		return nil, userRepo.ErrUserNotFound
	}
	return &domain.User{ID: 7, Name: "Maria", Email: "maria@example.com"}, nil
}

type fakeProcessor struct {
	payment *mercadopago.Payment
	err     error
}

func (f *fakeProcessor) GetPayment(context.Context, string) (*mercadopago.Payment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.payment, nil
}

type fakeNotifier struct {
	bookings chan telegram.BookingSummary
	lost     chan string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{
		bookings: make(chan telegram.BookingSummary, 4),
		lost:     make(chan string, 4),
	}
}

func (f *fakeNotifier) NotifyNewBooking(summary telegram.BookingSummary) error {
	f.bookings <- summary
	return nil
}

func (f *fakeNotifier) NotifySlotLost(_ int64, _ string, _ string, slot string) error {
	f.lost <- slot
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func ts(t *testing.T, s string) types.TimeString {
	t.Helper()
	v, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return v
}

func pendingPayment(t *testing.T) *domain.PendingPayment {
	t.Helper()
	return &domain.PendingPayment{
		ID:          42,
		UserID:      7,
		CourtID:     1,
		Sport:       domain.SportBeachTennis,
		Date:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		Slots:       []types.TimeString{ts(t, "14:00"), ts(t, "15:00")},
		TotalAmount: 160,
		Status:      domain.PaymentPending,
	}
}

func approvedMPPayment() *mercadopago.Payment {
	return &mercadopago.Payment{ID: 123, Status: mercadopago.StatusApproved, ExternalReference: "42"}
}

func newUseCase(payments *fakePaymentRepo, bookings *fakeBookingRepo, processor *fakeProcessor, notifier *fakeNotifier) *UseCase {
	return NewUseCase(payments, bookings, fakeCourtRepo{}, fakeUserRepo{}, processor, notifier, fakeTxManager{}, nopLogger{})
}

func TestExecute_ApprovedPaymentCreatesBookings(t *testing.T) {
	payments := &fakePaymentRepo{payment: pendingPayment(t)}
	bookings := &fakeBookingRepo{}
	notifier := newFakeNotifier()
	uc := newUseCase(payments, bookings, &fakeProcessor{payment: approvedMPPayment()}, notifier)

	resp, err := uc.Execute(context.Background(), &Request{MPPaymentID: "123"})
	require.NoError(t, err)
	assert.True(t, resp.Processed)
	assert.Equal(t, 2, resp.CreatedBookings)
	assert.Empty(t, resp.SkippedSlots)

	require.Len(t, bookings.created, 2)
	assert.Equal(t, "14:00", bookings.created[0].StartTime.String())
	assert.Equal(t, "15:00", bookings.created[0].EndTime.String())
	assert.Equal(t, "15:00", bookings.created[1].StartTime.String())
	assert.Equal(t, "16:00", bookings.created[1].EndTime.String())

	assert.Equal(t, domain.PaymentApproved, payments.payment.Status)
	assert.Equal(t, "123", payments.approvedID)

	select {
	case summary := <-notifier.bookings:
		assert.Equal(t, "Maria", summary.UserName)
		assert.Equal(t, "Quadra JJ", summary.CourtName)
		assert.Equal(t, []string{"14:00 - 15:00", "15:00 - 16:00"}, summary.Slots)
	case <-time.After(time.Second):
		t.Fatal("admin notification was not sent")
	}
}

func TestExecute_NonContiguousSlots(t *testing.T) {
	// Уведомление перечисляет каждый интервал: 10:00 и 14:00 не сливаются в 10:00-15:00
	payment := pendingPayment(t)
	payment.Slots = []types.TimeString{ts(t, "10:00"), ts(t, "14:00")}
	payments := &fakePaymentRepo{payment: payment}
	bookings := &fakeBookingRepo{}
	notifier := newFakeNotifier()
	uc := newUseCase(payments, bookings, &fakeProcessor{payment: approvedMPPayment()}, notifier)

	resp, err := uc.Execute(context.Background(), &Request{MPPaymentID: "123"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.CreatedBookings)

	select {
	case summary := <-notifier.bookings:
		assert.Equal(t, []string{"10:00 - 11:00", "14:00 - 15:00"}, summary.Slots)
	case <-time.After(time.Second):
		t.Fatal("admin notification was not sent")
	}
}

func TestExecute_LastSlotOfDay(t *testing.T) {
	// Оплаченный слот 23:00 материализуется бронированием до конца суток
	payment := pendingPayment(t)
	payment.Slots = []types.TimeString{ts(t, "23:00")}
	payments := &fakePaymentRepo{payment: payment}
	bookings := &fakeBookingRepo{}
	uc := newUseCase(payments, bookings, &fakeProcessor{payment: approvedMPPayment()}, newFakeNotifier())

	resp, err := uc.Execute(context.Background(), &Request{MPPaymentID: "123"})
	require.NoError(t, err)
	assert.True(t, resp.Processed)
	assert.Equal(t, 1, resp.CreatedBookings)

	require.Len(t, bookings.created, 1)
	assert.Equal(t, "23:00", bookings.created[0].StartTime.String())
	assert.Equal(t, "24:00", bookings.created[0].EndTime.String())

	// Драйверное значение конца суток не должно ломать запись
	value, err := bookings.created[0].EndTime.Value()
	require.NoError(t, err)
	assert.Equal(t, "24:00", value)

	assert.Equal(t, domain.PaymentApproved, payments.payment.Status)
}

func TestExecute_DuplicateWebhookIgnored(t *testing.T) {
	payment := pendingPayment(t)
	payment.Status = domain.PaymentApproved
	payments := &fakePaymentRepo{payment: payment}
	bookings := &fakeBookingRepo{}
	uc := newUseCase(payments, bookings, &fakeProcessor{payment: approvedMPPayment()}, newFakeNotifier())

	resp, err := uc.Execute(context.Background(), &Request{MPPaymentID: "123"})
	require.NoError(t, err)
	assert.False(t, resp.Processed)
	assert.Empty(t, bookings.created)
	assert.Equal(t, 0, payments.markedCount)
}

func TestExecute_NonApprovedIgnored(t *testing.T) {
	payments := &fakePaymentRepo{payment: pendingPayment(t)}
	bookings := &fakeBookingRepo{}
	processor := &fakeProcessor{
		payment: &mercadopago.Payment{ID: 123, Status: "rejected", ExternalReference: "42"},
	}
	uc := newUseCase(payments, bookings, processor, newFakeNotifier())

	resp, err := uc.Execute(context.Background(), &Request{MPPaymentID: "123"})
	require.NoError(t, err)
	assert.False(t, resp.Processed)
	assert.Empty(t, bookings.created)
	assert.Equal(t, domain.PaymentPending, payments.payment.Status)
}

func TestExecute_UnknownPaymentIgnored(t *testing.T) {
	uc := newUseCase(
		&fakePaymentRepo{payment: pendingPayment(t)},
		&fakeBookingRepo{},
		&fakeProcessor{err: mercadopago.ErrPaymentNotFound},
		newFakeNotifier(),
	)

	resp, err := uc.Execute(context.Background(), &Request{MPPaymentID: "123"})
	require.NoError(t, err)
	assert.False(t, resp.Processed)
}

func TestExecute_UnparsableReferenceIgnored(t *testing.T) {
	processor := &fakeProcessor{
		payment: &mercadopago.Payment{ID: 123, Status: mercadopago.StatusApproved, ExternalReference: "abc"},
	}
	uc := newUseCase(&fakePaymentRepo{payment: pendingPayment(t)}, &fakeBookingRepo{}, processor, newFakeNotifier())

	resp, err := uc.Execute(context.Background(), &Request{MPPaymentID: "123"})
	require.NoError(t, err)
	assert.False(t, resp.Processed)
}

func TestExecute_PartialFulfillment(t *testing.T) {
	// Слот 14:00 проигран конкуренту между initiate и approval
	payments := &fakePaymentRepo{payment: pendingPayment(t)}
	bookings := &fakeBookingRepo{
		existing: []*domain.Booking{
			{StartTime: ts(t, "14:00"), EndTime: ts(t, "15:00"), Status: domain.BookingActive},
		},
	}
	notifier := newFakeNotifier()
	uc := newUseCase(payments, bookings, &fakeProcessor{payment: approvedMPPayment()}, notifier)

	resp, err := uc.Execute(context.Background(), &Request{MPPaymentID: "123"})
	require.NoError(t, err)
	assert.True(t, resp.Processed)
	assert.Equal(t, 1, resp.CreatedBookings)
	assert.Equal(t, []string{"14:00"}, resp.SkippedSlots)

	require.Len(t, bookings.created, 1)
	assert.Equal(t, "15:00", bookings.created[0].StartTime.String())

	// Платеж все равно APPROVED
	assert.Equal(t, domain.PaymentApproved, payments.payment.Status)

	select {
	case slot := <-notifier.lost:
		assert.Equal(t, "14:00", slot)
	case <-time.After(time.Second):
		t.Fatal("lost slot notification was not sent")
	}

	// Уведомление о бронировании содержит только полученный слот
	select {
	case summary := <-notifier.bookings:
		assert.Equal(t, []string{"15:00 - 16:00"}, summary.Slots)
	case <-time.After(time.Second):
		t.Fatal("admin notification was not sent")
	}
}

func TestExecute_EmptyPaymentID(t *testing.T) {
	uc := newUseCase(&fakePaymentRepo{payment: pendingPayment(t)}, &fakeBookingRepo{}, &fakeProcessor{}, newFakeNotifier())

	resp, err := uc.Execute(context.Background(), &Request{MPPaymentID: ""})
	require.NoError(t, err)
	assert.False(t, resp.Processed)
}
