package create_payment_preference

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/internal/service/auth"
	initiatePayment "github.com/m04kA/SMC-CourtService/internal/usecase/initiate_payment"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// CreatePreferenceRequest HTTP request model
type CreatePreferenceRequest struct {
	CourtID int64    `json:"courtId"`
	Sport   string   `json:"sport"`
	Date    string   `json:"date"`  // "2025-10-15"
	Slots   []string `json:"slots"` // Времена начала часовых слотов, ["14:00", "15:00"]
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *CreatePreferenceRequest) ToUseCaseRequest(claims *auth.Claims) (*initiatePayment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0, len(r.Slots))
	for _, s := range r.Slots {
		slot, err := types.NewTimeStringFromString(s)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return &initiatePayment.Request{
		UserID:    claims.UserID,
		UserName:  claims.Name,
		UserEmail: claims.Email,
		CourtID:   r.CourtID,
		Sport:     r.Sport,
		Date:      date,
		Slots:     slots,
	}, nil
}

// CreatePreferenceResponse HTTP response model
type CreatePreferenceResponse struct {
	PendingPaymentID int64  `json:"pendingPaymentId"`
	InitPoint        string `json:"initPoint"`
	TotalAmount      int64  `json:"totalAmount"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *initiatePayment.Response) *CreatePreferenceResponse {
	return &CreatePreferenceResponse{
		PendingPaymentID: resp.PendingPaymentID,
		InitPoint:        resp.InitPoint,
		TotalAmount:      resp.TotalAmount,
	}
}
