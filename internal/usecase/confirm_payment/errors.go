package confirm_payment

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	// Webhook-обработчик логирует её и все равно отвечает процессору 200,
	// чтобы тот повторил доставку позже
	ErrInternal = errors.New("confirm_payment: internal error")
)
