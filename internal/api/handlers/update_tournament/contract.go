package update_tournament

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/tournaments/models"
)

type TournamentService interface {
	Update(ctx context.Context, id int64, req *models.UpdateTournamentRequest) (*models.TournamentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
