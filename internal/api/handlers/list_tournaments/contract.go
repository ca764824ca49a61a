package list_tournaments

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/tournaments/models"
)

type TournamentService interface {
	List(ctx context.Context) (*models.TournamentListResponse, error)
	ListForAdmin(ctx context.Context) (*models.TournamentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
