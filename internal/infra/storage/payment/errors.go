package payment

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда ожидающий платеж не найден
	ErrPaymentNotFound = errors.New("payment.repository: pending payment not found")

	// ErrNotPending возвращается при попытке перевести платеж из терминального
	// состояния - переходы из APPROVED/REJECTED запрещены
	ErrNotPending = errors.New("payment.repository: payment is not in PENDING state")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("payment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("payment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("payment.repository: failed to scan row")
)
