package mercadopago

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда процессор не знает платеж с таким ID
	ErrPaymentNotFound = errors.New("mercadopago client: payment not found")

	// ErrUpstream возвращается, когда процессор недоступен или отклонил запрос
	// (сетевые ошибки, таймауты, не-2xx статусы)
	ErrUpstream = errors.New("mercadopago client: upstream error")

	// ErrInvalidResponse возвращается при некорректном ответе процессора
	ErrInvalidResponse = errors.New("mercadopago client: invalid response")
)
