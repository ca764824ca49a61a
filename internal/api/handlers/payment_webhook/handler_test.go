package payment_webhook

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	confirmPayment "github.com/m04kA/SMC-CourtService/internal/usecase/confirm_payment"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	gotPaymentID string
	err          error
}

func (f *fakeUseCase) Execute(_ context.Context, req *confirmPayment.Request) (*confirmPayment.Response, error) {
	f.gotPaymentID = req.MPPaymentID
	if f.err != nil {
		return nil, f.err
	}
	return &confirmPayment.Response{Processed: true, CreatedBookings: 1}, nil
}

func TestHandle_PaymentIDFromBody(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	body := `{"type":"payment","action":"payment.updated","data":{"id":"123"}}`
	r := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Handle(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	assert.Equal(t, "123", uc.gotPaymentID)
}

func TestHandle_PaymentIDFromQuery(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	r := httptest.NewRequest(http.MethodPost, "/api/payments/webhook?data.id=456", strings.NewReader(""))
	w := httptest.NewRecorder()

	h.Handle(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "456", uc.gotPaymentID)
}

func TestHandle_AlwaysRespondsOK(t *testing.T) {
	// Процессор ретраит на любой не-200, поэтому 200 даже при сбое обработки
	uc := &fakeUseCase{err: errors.New("db is down")}
	h := NewHandler(uc, nopLogger{})

	body := `{"data":{"id":"123"}}`
	r := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Handle(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestHandle_NoPaymentID(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	r := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", strings.NewReader("{}"))
	w := httptest.NewRecorder()

	h.Handle(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, uc.gotPaymentID)
}
