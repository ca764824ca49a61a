package update_tournament

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtService/internal/service/tournaments"
	"github.com/m04kA/SMC-CourtService/internal/service/tournaments/models"
)

const (
	msgInvalidTournamentID = "некорректный ID турнира"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInput        = "некорректные данные турнира"
	msgNotFound            = "турнир не найден"
	msgForbidden           = "доступ запрещен"
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

// Handle PUT /api/tournaments/{tournamentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAdmin(r.Context()) {
		h.logger.Warn("PUT /tournaments/{id} - Access denied")
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	vars := mux.Vars(r)
	tournamentID, err := strconv.ParseInt(vars["tournamentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /tournaments/{id} - Invalid tournament ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTournamentID)
		return
	}

	var req models.UpdateTournamentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tournaments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), tournamentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, tournaments.ErrTournamentNotFound):
			h.logger.Warn("PUT /tournaments/{id} - Tournament not found: tournament_id=%d", tournamentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tournaments.ErrInvalidInput):
			h.logger.Warn("PUT /tournaments/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /tournaments/{id} - Failed to update tournament: tournament_id=%d, error=%v",
				tournamentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /tournaments/{id} - Tournament updated successfully: tournament_id=%d", tournamentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
