package create_tournament

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtService/internal/service/tournaments"
	"github.com/m04kA/SMC-CourtService/internal/service/tournaments/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные турнира"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service TournamentService
	logger  Logger
}

func NewHandler(service TournamentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/tournaments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAdmin(r.Context()) {
		h.logger.Warn("POST /tournaments - Access denied")
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req models.CreateTournamentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tournaments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, tournaments.ErrInvalidInput):
			h.logger.Warn("POST /tournaments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /tournaments - Failed to create tournament: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tournaments - Tournament created successfully: tournament_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
