package initiate_payment

import (
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Request модель запроса на создание платежной сессии
type Request struct {
	UserID    int64
	UserName  string
	UserEmail string

	CourtID int64
	Sport   string
	Date    time.Time          // Дата бронирования (без времени)
	Slots   []types.TimeString // Времена начала часовых слотов, например ["14:00", "15:00"]
}

// Response модель ответа с адресом оплаты
type Response struct {
	PendingPaymentID int64  // Внутренний ID, используется как external_reference
	InitPoint        string // Адрес checkout для перенаправления пользователя
	TotalAmount      int64
}
