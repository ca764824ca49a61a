package models

import (
	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// CourtResponse публичные данные квадры
type CourtResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Sport        string `json:"sport"`
	Type         string `json:"type"`
	PricePerHour int64  `json:"pricePerHour"`
}

// CourtListResponse ответ со списком квадр
type CourtListResponse struct {
	Courts []CourtResponse `json:"courts"`
}

// FromDomainCourt конвертирует domain модель в DTO
func FromDomainCourt(c *domain.Court) *CourtResponse {
	if c == nil {
		return nil
	}

	return &CourtResponse{
		ID:           c.ID,
		Name:         c.Name,
		Sport:        string(c.Sport),
		Type:         string(c.Type),
		PricePerHour: c.PricePerHour,
	}
}

// FromDomainCourts конвертирует список domain моделей в DTO
func FromDomainCourts(courts []*domain.Court) *CourtListResponse {
	resp := &CourtListResponse{
		Courts: make([]CourtResponse, 0, len(courts)),
	}
	for _, c := range courts {
		resp.Courts = append(resp.Courts, *FromDomainCourt(c))
	}
	return resp
}
