package delete_tournament

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtService/internal/service/tournaments"
)

const (
	msgInvalidTournamentID = "некорректный ID турнира"
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

// Handle DELETE /api/tournaments/{tournamentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAdmin(r.Context()) {
		h.logger.Warn("DELETE /tournaments/{id} - Access denied")
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	vars := mux.Vars(r)
	tournamentID, err := strconv.ParseInt(vars["tournamentId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /tournaments/{id} - Invalid tournament ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTournamentID)
		return
	}

	if err := h.service.Delete(r.Context(), tournamentID); err != nil {
		switch {
		case errors.Is(err, tournaments.ErrTournamentNotFound):
			h.logger.Warn("DELETE /tournaments/{id} - Tournament not found: tournament_id=%d", tournamentID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /tournaments/{id} - Failed to delete tournament: tournament_id=%d, error=%v",
				tournamentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tournaments/{id} - Tournament deleted successfully: tournament_id=%d", tournamentID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
