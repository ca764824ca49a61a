package payment_webhook

// WebhookBody тело вебхука платежного процессора
// Интересен только data.id, остальное игнорируется
type WebhookBody struct {
	Type   string      `json:"type"`
	Action string      `json:"action"`
	Data   WebhookData `json:"data"`
}

// WebhookData вложенные данные вебхука
type WebhookData struct {
	ID string `json:"id"`
}
