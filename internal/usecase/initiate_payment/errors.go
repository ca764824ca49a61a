package initiate_payment

import (
	"errors"
	"fmt"
)

var (
	// ErrCourtNotFound возвращается, когда квадра не найдена
	ErrCourtNotFound = errors.New("initiate_payment: court not found")

	// ErrSlotTaken возвращается, когда запрошенный слот уже занят
	// Проверка носит рекомендательный характер: окончательную защиту дает
	// уникальный индекс при материализации бронирований после оплаты
	ErrSlotTaken = errors.New("initiate_payment: slot is not available")

	// ErrUpstream возвращается, когда платежный процессор недоступен
	ErrUpstream = errors.New("initiate_payment: payment processor error")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("initiate_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("initiate_payment: internal error")
)

// SlotTakenError несет первый занятый слот для сообщения клиенту
type SlotTakenError struct {
	Slot string
}

func (e *SlotTakenError) Error() string {
	return fmt.Sprintf("%v: slot %s", ErrSlotTaken, e.Slot)
}

func (e *SlotTakenError) Unwrap() error {
	return ErrSlotTaken
}
