package register_tournament

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
	msgInvalidLeague       = "некорректная лига"
	msgNotFound            = "турнир не найден"
	msgAlreadyRegistered   = "вы уже зарегистрированы в этой лиге"
	msgLeagueUnavailable   = "эта лига не проводится в турнире"
	msgRegistrationClosed  = "регистрация на турнир закрыта"
	msgUnauthorized        = "требуется аутентификация"
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

// Handle POST /api/tournaments/{tournamentId}/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.CurrentUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	tournamentID, err := strconv.ParseInt(vars["tournamentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /tournaments/{id}/register - Invalid tournament ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTournamentID)
		return
	}

	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tournaments/{id}/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), claims.UserID, tournamentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, tournaments.ErrTournamentNotFound):
			h.logger.Warn("POST /tournaments/{id}/register - Tournament not found: tournament_id=%d", tournamentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tournaments.ErrAlreadyRegistered):
			h.logger.Warn("POST /tournaments/{id}/register - Already registered: tournament_id=%d, user_id=%d",
				tournamentID, claims.UserID)
			handlers.RespondConflict(w, msgAlreadyRegistered)

		case errors.Is(err, tournaments.ErrLeagueUnavailable):
			h.logger.Warn("POST /tournaments/{id}/register - League unavailable: tournament_id=%d, league=%s",
				tournamentID, req.League)
			handlers.RespondBadRequest(w, msgLeagueUnavailable)

		case errors.Is(err, tournaments.ErrRegistrationClosed):
			h.logger.Warn("POST /tournaments/{id}/register - Registration closed: tournament_id=%d", tournamentID)
			handlers.RespondBadRequest(w, msgRegistrationClosed)

		case errors.Is(err, tournaments.ErrInvalidInput):
			h.logger.Warn("POST /tournaments/{id}/register - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLeague)

		default:
			h.logger.Error("POST /tournaments/{id}/register - Failed to register: tournament_id=%d, user_id=%d, error=%v",
				tournamentID, claims.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tournaments/{id}/register - Registered successfully: tournament_id=%d, user_id=%d, league=%s",
		tournamentID, claims.UserID, req.League)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
