package create_payment_preference

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtService/internal/service/auth"
	initiatePayment "github.com/m04kA/SMC-CourtService/internal/usecase/initiate_payment"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *initiatePayment.Response
	err  error
}

func (f *fakeUseCase) Execute(context.Context, *initiatePayment.Request) (*initiatePayment.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeParser struct{}

func (fakeParser) ParseToken(string) (*auth.Claims, error) {
	return &auth.Claims{UserID: 7, Role: "USER", Email: "maria@example.com", Name: "Maria"}, nil
}

func serve(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	mw := middleware.NewAuth(fakeParser{}, nopLogger{})

	r := httptest.NewRequest(http.MethodPost, "/api/payments/create-preference", strings.NewReader(body))
	r.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()

	mw.Require(http.HandlerFunc(h.Handle)).ServeHTTP(w, r)
	return w
}

const validBody = `{"courtId":1,"sport":"BEACH_TENNIS","date":"2025-10-15","slots":["14:00","15:00"]}`

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &initiatePayment.Response{
		PendingPaymentID: 42,
		InitPoint:        "https://sandbox.mercadopago.com/checkout/42",
		TotalAmount:      160,
	}}

	w := serve(t, uc, validBody)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"pendingPaymentId":42`)
	assert.Contains(t, w.Body.String(), "sandbox.mercadopago.com")
}

func TestHandle_ConflictNamesSlot(t *testing.T) {
	uc := &fakeUseCase{err: &initiatePayment.SlotTakenError{Slot: "14:00"}}

	w := serve(t, uc, validBody)

	require.Equal(t, http.StatusConflict, w.Code)
	// В 409 называем конкретный занятый слот
	assert.Contains(t, w.Body.String(), "14:00")
}

func TestHandle_CourtNotFound(t *testing.T) {
	uc := &fakeUseCase{err: initiatePayment.ErrCourtNotFound}

	w := serve(t, uc, validBody)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandle_UpstreamError(t *testing.T) {
	uc := &fakeUseCase{err: initiatePayment.ErrUpstream}

	w := serve(t, uc, validBody)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandle_InvalidSlotFormat(t *testing.T) {
	uc := &fakeUseCase{}

	w := serve(t, uc, `{"courtId":1,"sport":"BEACH_TENNIS","date":"2025-10-15","slots":["25:00"]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
