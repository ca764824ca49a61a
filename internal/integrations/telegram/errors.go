package telegram

import "errors"

var (
	// ErrSendFailed возвращается, когда сообщение не удалось отправить
	// Вызывающая сторона логирует эту ошибку и никогда не пробрасывает её дальше
	ErrSendFailed = errors.New("telegram notifier: failed to send message")
)
