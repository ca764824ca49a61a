package domain

import "time"

// TournamentStatus статус турнира
type TournamentStatus string

const (
	TournamentUpcoming TournamentStatus = "UPCOMING"
	TournamentOngoing  TournamentStatus = "ONGOING"
	TournamentFinished TournamentStatus = "FINISHED"
	TournamentCanceled TournamentStatus = "CANCELED"
)

// IsValid проверяет, что статус известен системе
func (s TournamentStatus) IsValid() bool {
	switch s {
	case TournamentUpcoming, TournamentOngoing, TournamentFinished, TournamentCanceled:
		return true
	default:
		return false
	}
}

// League лига турнира
type League string

const (
	LeagueGold   League = "GOLD"
	LeagueSilver League = "SILVER"
	LeagueBronze League = "BRONZE"
)

// IsValid проверяет, что лига известна системе
func (l League) IsValid() bool {
	switch l {
	case LeagueGold, LeagueSilver, LeagueBronze:
		return true
	default:
		return false
	}
}

// Tournament represents a championship managed by administrators
type Tournament struct {
	ID          int64
	Name        string
	Description *string
	Sport       Sport

	StartDate           time.Time
	EndDate             *time.Time
	RegistrationEndDate *time.Time

	HasGold   bool
	HasSilver bool
	HasBronze bool

	Status TournamentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasLeague проверяет, что лига доступна в этом турнире
func (t *Tournament) HasLeague(l League) bool {
	switch l {
	case LeagueGold:
		return t.HasGold
	case LeagueSilver:
		return t.HasSilver
	case LeagueBronze:
		return t.HasBronze
	default:
		return false
	}
}

// IsOpenForRegistration проверяет, что турнир принимает заявки на дату now
// Открыт для UPCOMING и ONGOING, если срок регистрации не истек
func (t *Tournament) IsOpenForRegistration(now time.Time) bool {
	if t.Status != TournamentUpcoming && t.Status != TournamentOngoing {
		return false
	}

	if t.RegistrationEndDate != nil {
		nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		endDay := t.RegistrationEndDate
		endDayOnly := time.Date(endDay.Year(), endDay.Month(), endDay.Day(), 0, 0, 0, 0, time.UTC)
		if endDayOnly.Before(nowDay) {
			return false
		}
	}

	return true
}

// TournamentRegistration represents a user's entry into a tournament league
// Уникальна по (user, tournament, league)
type TournamentRegistration struct {
	ID           int64
	UserID       int64
	TournamentID int64
	League       League

	CreatedAt time.Time
}
