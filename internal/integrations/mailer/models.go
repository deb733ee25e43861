package mailer

// SendRequest тело запроса на отправку письма
type SendRequest struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"` // HTML
}

// SendResponse ответ сервиса отправки
type SendResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}
