package mercadopago

// PreferenceItem позиция в checkout preference
type PreferenceItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	CurrencyID  string `json:"currency_id"`
	UnitPrice   int64  `json:"unit_price"`
}

// PreferencePayer плательщик
type PreferencePayer struct {
	Email string `json:"email"`
}

// PreferenceBackURLs адреса возврата пользователя после оплаты
type PreferenceBackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

// PreferenceRequest запрос на создание checkout preference
type PreferenceRequest struct {
	Items             []PreferenceItem   `json:"items"`
	Payer             PreferencePayer    `json:"payer"`
	ExternalReference string             `json:"external_reference"`
	BackURLs          PreferenceBackURLs `json:"back_urls"`
	AutoReturn        string             `json:"auto_return"`
	NotificationURL   string             `json:"notification_url"`
}

// PreferenceResponse ответ процессора на создание preference
type PreferenceResponse struct {
	ID              string `json:"id"`
	InitPoint       string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

// RedirectURL возвращает адрес для перенаправления пользователя
// Sandbox-адрес имеет приоритет (заполнен только для тестовых учетных записей)
func (p *PreferenceResponse) RedirectURL() string {
	if p.SandboxInitPoint != "" {
		return p.SandboxInitPoint
	}
	return p.InitPoint
}

// Payment состояние платежа у процессора
type Payment struct {
	ID                int64  `json:"id"`
	Status            string `json:"status"`
	ExternalReference string `json:"external_reference"`
}

// StatusApproved статус подтвержденного платежа у процессора
const StatusApproved = "approved"

// IsApproved проверяет, что процессор подтвердил платеж
func (p *Payment) IsApproved() bool {
	return p.Status == StatusApproved
}
