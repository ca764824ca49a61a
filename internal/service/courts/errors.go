package courts

import "errors"

var (
	// ErrCourtNotFound возвращается, когда квадра не найдена
	ErrCourtNotFound = errors.New("court not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
