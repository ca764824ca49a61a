package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64  // ID пользователя из токена
	UserName  string // Имя для уведомления администратора
	UserEmail string // Email для уведомления администратора

	CourtID   int64
	Sport     string           // Вид спорта на слоте (квадры мультиспортивные)
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала, например "10:00"
	EndTime   types.TimeString // Время конца, например "11:00"
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID      int64
	UserID  int64
	CourtID int64
	Sport   string

	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      string

	CreatedAt time.Time
	UpdatedAt time.Time
}
