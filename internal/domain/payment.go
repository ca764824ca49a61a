package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// PaymentStatus статус ожидающего платежа
// Машина состояний: PENDING -> {APPROVED, REJECTED}, оба терминальные
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentApproved PaymentStatus = "APPROVED"
	PaymentRejected PaymentStatus = "REJECTED"
)

// PendingPayment represents a provisional payment awaiting external confirmation
// Holds the requested slots until the processor approves and bookings are materialized
type PendingPayment struct {
	ID      int64
	UserID  int64
	CourtID int64
	Sport   Sport

	Date  time.Time
	Slots []types.TimeString // Упорядоченный список времен начала запрошенных слотов

	TotalAmount int64 // price_per_hour * len(Slots)

	Status PaymentStatus

	// Ссылки на внешний платежный процессор
	MPPreferenceID *string // ID созданного preference (устанавливается после initiate)
	MPPaymentID    *string // ID платежа у процессора (устанавливается при подтверждении)

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if no further transitions are permitted
func (p *PendingPayment) IsTerminal() bool {
	return p.Status == PaymentApproved || p.Status == PaymentRejected
}

// IsPending returns true if the payment still awaits an external signal
func (p *PendingPayment) IsPending() bool {
	return p.Status == PaymentPending
}
