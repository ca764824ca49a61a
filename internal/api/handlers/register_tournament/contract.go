package register_tournament

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/tournaments/models"
)

type TournamentService interface {
	Register(ctx context.Context, userID int64, tournamentID int64, req *models.RegisterRequest) (*models.RegistrationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
