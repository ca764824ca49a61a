package confirm_payment

// Request модель входящего сигнала от платежного процессора
type Request struct {
	MPPaymentID string // ID платежа у процессора из тела или query вебхука
}

// Response итог обработки сигнала
type Response struct {
	Processed       bool     // false, если сигнал проигнорирован (не approved, дубль, неизвестный платеж)
	CreatedBookings int      // Сколько бронирований материализовано
	SkippedSlots    []string // Оплаченные слоты, проигранные конкурентам
}
