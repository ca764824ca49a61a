package list_bookings

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtService/internal/domain"
)

const (
	msgInvalidCourtID = "некорректный ID квадры"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnauthorized   = "требуется аутентификация"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/bookings
//
// Три режима по query-параметрам:
//   - ?courtId=N&date=YYYY-MM-DD: активные бронирования квадры на дату (публично)
//   - ?admin=true: последние бронирования всех пользователей (только администратор)
//   - без параметров: история бронирований текущего пользователя
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Get("courtId") != "" || query.Get("date") != "" {
		h.handleCourtDate(w, r)
		return
	}

	if query.Get("admin") == "true" {
		h.handleAdmin(w, r)
		return
	}

	h.handleOwn(w, r)
}

func (h *Handler) handleCourtDate(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	courtID, err := strconv.ParseInt(query.Get("courtId"), 10, 64)
	if err != nil || courtID <= 0 {
		h.logger.Warn("GET /bookings - Invalid court ID: %q", query.Get("courtId"))
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid date: %q", query.Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetCourtDateBookings(r.Context(), courtID, date)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list court bookings: court_id=%d, error=%v", courtID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) handleAdmin(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.CurrentUser(r.Context()); !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if !middleware.IsAdmin(r.Context()) {
		h.logger.Warn("GET /bookings?admin=true - Access denied")
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.GetRecentForAdmin(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings?admin=true - Failed to list recent bookings: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) handleOwn(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.CurrentUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetUserBookings(r.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list user bookings: user_id=%d, error=%v", claims.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
