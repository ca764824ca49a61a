package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/internal/service/auth"
	createBooking "github.com/m04kA/SMC-CourtService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourtID   int64  `json:"courtId"`
	Sport     string `json:"sport"`
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
// Пользователь берется из токена, не из тела
func (r *CreateBookingRequest) ToUseCaseRequest(claims *auth.Claims) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:    claims.UserID,
		UserName:  claims.Name,
		UserEmail: claims.Email,
		CourtID:   r.CourtID,
		Sport:     r.Sport,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"userId"`
	CourtID int64  `json:"courtId"`
	Sport   string `json:"sport"`

	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Status      string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:          resp.ID,
		UserID:      resp.UserID,
		CourtID:     resp.CourtID,
		Sport:       resp.Sport,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt,
		UpdatedAt:   resp.UpdatedAt,
	}
}
