package list_tournaments

import (
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
)

const (
	msgForbidden = "доступ запрещен"
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

// Handle GET /api/tournaments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /tournaments - Failed to list tournaments: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleAdmin GET /api/tournaments/admin
//
// Админская выборка, свежесозданные первыми
func (h *Handler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAdmin(r.Context()) {
		h.logger.Warn("GET /tournaments/admin - Access denied")
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.ListForAdmin(r.Context())
	if err != nil {
		h.logger.Error("GET /tournaments/admin - Failed to list tournaments: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
