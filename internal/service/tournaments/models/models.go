package models

import (
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// Request модели

// CreateTournamentRequest запрос на создание турнира
type CreateTournamentRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Sport       string  `json:"sport"`

	StartDate           string  `json:"startDate"`                     // "2025-11-01"
	EndDate             *string `json:"endDate,omitempty"`             // "2025-11-03"
	RegistrationEndDate *string `json:"registrationEndDate,omitempty"` // "2025-10-25"

	HasGold   bool `json:"hasGold"`
	HasSilver bool `json:"hasSilver"`
	HasBronze bool `json:"hasBronze"`

	Status *string `json:"status,omitempty"` // По умолчанию UPCOMING
}

// UpdateTournamentRequest запрос на частичное обновление турнира
// nil-поля не изменяются
type UpdateTournamentRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Sport       *string `json:"sport,omitempty"`

	StartDate           *string `json:"startDate,omitempty"`
	EndDate             *string `json:"endDate,omitempty"`
	RegistrationEndDate *string `json:"registrationEndDate,omitempty"`

	HasGold   *bool `json:"hasGold,omitempty"`
	HasSilver *bool `json:"hasSilver,omitempty"`
	HasBronze *bool `json:"hasBronze,omitempty"`

	Status *string `json:"status,omitempty"`
}

// RegisterRequest запрос на регистрацию в лигу турнира
type RegisterRequest struct {
	League string `json:"league"`
}

// Response модели

// TournamentResponse ответ с данными турнира
type TournamentResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Sport       string  `json:"sport"`

	StartDate           string  `json:"startDate"`
	EndDate             *string `json:"endDate,omitempty"`
	RegistrationEndDate *string `json:"registrationEndDate,omitempty"`

	HasGold   bool `json:"hasGold"`
	HasSilver bool `json:"hasSilver"`
	HasBronze bool `json:"hasBronze"`

	Status string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TournamentListResponse ответ со списком турниров
type TournamentListResponse struct {
	Tournaments []TournamentResponse `json:"tournaments"`
}

// RegistrationResponse ответ с данными регистрации
type RegistrationResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	TournamentID int64     `json:"tournamentId"`
	League       string    `json:"league"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RegistrationListResponse ответ со списком регистраций
type RegistrationListResponse struct {
	Registrations []RegistrationResponse `json:"registrations"`
}

// Методы конвертации

// FromDomainTournament конвертирует domain модель в DTO
func FromDomainTournament(t *domain.Tournament) *TournamentResponse {
	if t == nil {
		return nil
	}

	resp := &TournamentResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Sport:       string(t.Sport),
		StartDate:   t.StartDate.Format(domain.DateFormat),
		HasGold:     t.HasGold,
		HasSilver:   t.HasSilver,
		HasBronze:   t.HasBronze,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}

	if t.EndDate != nil {
		v := t.EndDate.Format(domain.DateFormat)
		resp.EndDate = &v
	}
	if t.RegistrationEndDate != nil {
		v := t.RegistrationEndDate.Format(domain.DateFormat)
		resp.RegistrationEndDate = &v
	}

	return resp
}

// FromDomainTournaments конвертирует список domain моделей в DTO
func FromDomainTournaments(tournaments []*domain.Tournament) *TournamentListResponse {
	resp := &TournamentListResponse{
		Tournaments: make([]TournamentResponse, 0, len(tournaments)),
	}
	for _, t := range tournaments {
		resp.Tournaments = append(resp.Tournaments, *FromDomainTournament(t))
	}
	return resp
}

// FromDomainRegistration конвертирует domain модель в DTO
func FromDomainRegistration(r *domain.TournamentRegistration) *RegistrationResponse {
	if r == nil {
		return nil
	}

	return &RegistrationResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		TournamentID: r.TournamentID,
		League:       string(r.League),
		CreatedAt:    r.CreatedAt,
	}
}

// FromDomainRegistrations конвертирует список domain моделей в DTO
func FromDomainRegistrations(regs []*domain.TournamentRegistration) *RegistrationListResponse {
	resp := &RegistrationListResponse{
		Registrations: make([]RegistrationResponse, 0, len(regs)),
	}
	for _, r := range regs {
		resp.Registrations = append(resp.Registrations, *FromDomainRegistration(r))
	}
	return resp
}
