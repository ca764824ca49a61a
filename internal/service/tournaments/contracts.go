package tournaments

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// TournamentRepository интерфейс репозитория турниров
type TournamentRepository interface {
	Create(ctx context.Context, t *domain.Tournament) (*domain.Tournament, error)
	GetByID(ctx context.Context, id int64) (*domain.Tournament, error)
	List(ctx context.Context) ([]*domain.Tournament, error)
	ListRecent(ctx context.Context) ([]*domain.Tournament, error)
	Update(ctx context.Context, t *domain.Tournament) error
	Delete(ctx context.Context, id int64) error
	CreateRegistration(ctx context.Context, reg *domain.TournamentRegistration) (*domain.TournamentRegistration, error)
	GetRegistrationsByUser(ctx context.Context, userID int64) ([]*domain.TournamentRegistration, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
