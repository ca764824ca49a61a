package initiate_payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtService/internal/integrations/mercadopago"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakePaymentRepo struct {
	created      *domain.PendingPayment
	preferenceID string
	rejected     bool
}

func (f *fakePaymentRepo) Create(_ context.Context, p *domain.PendingPayment) (*domain.PendingPayment, error) {
	created := *p
	created.ID = 42
	f.created = &created
	return &created, nil
}

func (f *fakePaymentRepo) SetPreferenceID(_ context.Context, _ int64, preferenceID string) error {
	f.preferenceID = preferenceID
	return nil
}

func (f *fakePaymentRepo) MarkRejected(context.Context, int64) error {
	f.rejected = true
	return nil
}

type fakeBookingRepo struct {
	existing []*domain.Booking
}

func (f *fakeBookingRepo) GetActiveByCourtAndDate(context.Context, int64, time.Time) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakeCourtRepo struct {
	court *domain.Court
}

func (f *fakeCourtRepo) GetByID(_ context.Context, id int64) (*domain.Court, error) {
	if f.court == nil || f.court.ID != id {
		return nil, courtRepo.ErrCourtNotFound
	}
	return f.court, nil
}

type fakeProcessor struct {
	request  *mercadopago.PreferenceRequest
	response *mercadopago.PreferenceResponse
	err      error
}

func (f *fakeProcessor) CreatePreference(_ context.Context, pref *mercadopago.PreferenceRequest) (*mercadopago.PreferenceResponse, error) {
	f.request = pref
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func ts(t *testing.T, s string) types.TimeString {
	t.Helper()
	v, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return v
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		UserID:    1,
		UserName:  "Maria",
		UserEmail: "maria@example.com",
		CourtID:   4,
		Sport:     "VOLEI",
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		Slots:     []types.TimeString{ts(t, "14:00"), ts(t, "15:00")},
	}
}

func newUseCase(payments *fakePaymentRepo, bookings *fakeBookingRepo, processor *fakeProcessor) *UseCase {
	courts := &fakeCourtRepo{court: &domain.Court{ID: 4, Name: "Quadra 4", PricePerHour: 50}}
	return NewUseCase(payments, bookings, courts, processor,
		"https://arena.example.com", "https://api.arena.example.com", nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	payments := &fakePaymentRepo{}
	processor := &fakeProcessor{
		response: &mercadopago.PreferenceResponse{
			ID:        "pref-1",
			InitPoint: "https://mp.example.com/checkout/pref-1",
		},
	}
	uc := newUseCase(payments, &fakeBookingRepo{}, processor)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	// 2 слота по 50 за час
	assert.Equal(t, int64(100), resp.TotalAmount)
	assert.Equal(t, int64(42), resp.PendingPaymentID)
	assert.Equal(t, "https://mp.example.com/checkout/pref-1", resp.InitPoint)

	require.NotNil(t, payments.created)
	assert.Equal(t, domain.PaymentPending, payments.created.Status)
	assert.Equal(t, "pref-1", payments.preferenceID)

	require.NotNil(t, processor.request)
	assert.Equal(t, "42", processor.request.ExternalReference)
	require.Len(t, processor.request.Items, 1)
	assert.Equal(t, int64(100), processor.request.Items[0].UnitPrice)
	assert.Equal(t, "BRL", processor.request.Items[0].CurrencyID)
	assert.Contains(t, processor.request.NotificationURL, "/api/payments/webhook")
}

func TestExecute_SandboxInitPointPreferred(t *testing.T) {
	processor := &fakeProcessor{
		response: &mercadopago.PreferenceResponse{
			ID:               "pref-1",
			InitPoint:        "https://mp.example.com/live",
			SandboxInitPoint: "https://mp.example.com/sandbox",
		},
	}
	uc := newUseCase(&fakePaymentRepo{}, &fakeBookingRepo{}, processor)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)
	assert.Equal(t, "https://mp.example.com/sandbox", resp.InitPoint)
}

func TestExecute_SlotTaken(t *testing.T) {
	bookings := &fakeBookingRepo{
		existing: []*domain.Booking{
			{StartTime: ts(t, "14:00"), EndTime: ts(t, "15:00"), Status: domain.BookingActive},
		},
	}
	payments := &fakePaymentRepo{}
	uc := newUseCase(payments, bookings, &fakeProcessor{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	require.ErrorIs(t, err, ErrSlotTaken)
	// Конфликтный слот называется в ошибке
	assert.Contains(t, err.Error(), "14:00")
	assert.Nil(t, payments.created)
}

func TestExecute_DuplicateSlotsRejected(t *testing.T) {
	uc := newUseCase(&fakePaymentRepo{}, &fakeBookingRepo{}, &fakeProcessor{})

	req := validRequest(t)
	req.Slots = []types.TimeString{ts(t, "14:00"), ts(t, "14:00")}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_UpstreamFailureRejectsPayment(t *testing.T) {
	payments := &fakePaymentRepo{}
	processor := &fakeProcessor{err: errors.New("mp is down")}
	uc := newUseCase(payments, &fakeBookingRepo{}, processor)

	_, err := uc.Execute(context.Background(), validRequest(t))
	require.ErrorIs(t, err, ErrUpstream)
	assert.True(t, payments.rejected)
}

func TestExecute_CourtNotFound(t *testing.T) {
	uc := NewUseCase(&fakePaymentRepo{}, &fakeBookingRepo{}, &fakeCourtRepo{}, &fakeProcessor{},
		"https://arena.example.com", "https://api.arena.example.com", nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := newUseCase(&fakePaymentRepo{}, &fakeBookingRepo{}, &fakeProcessor{})

	req := validRequest(t)
	req.Slots = nil
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest(t)
	req.Sport = "PADEL"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
