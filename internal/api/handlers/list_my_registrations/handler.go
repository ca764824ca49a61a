package list_my_registrations

import (
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
)

const (
	msgUnauthorized = "требуется аутентификация"
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

// Handle GET /api/tournaments/registrations/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.CurrentUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.MyRegistrations(r.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("GET /tournaments/registrations/me - Failed to list registrations: user_id=%d, error=%v",
			claims.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
