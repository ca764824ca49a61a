package list_my_registrations

import (
	"context"

	"github.com/m04kA/SMC-CourtService/internal/service/tournaments/models"
)

type TournamentService interface {
	MyRegistrations(ctx context.Context, userID int64) (*models.RegistrationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
