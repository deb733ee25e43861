package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент HTTP-сервиса отправки писем
type Client struct {
	url        string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(url string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendEmail отправляет HTML-письмо одному получателю
func (c *Client) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	payload, err := json.Marshal(SendRequest{Email: to, Subject: subject, Body: htmlBody})
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	var result SendResponse
	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		// Продолжаем обработку
	case http.StatusInternalServerError:
		if err := json.NewDecoder(resp.Body).Decode(&result); err == nil && result.Error != "" {
			return fmt.Errorf("%w: %s", ErrRejected, result.Error)
		}
		return fmt.Errorf("%w: status code %d", ErrRejected, resp.StatusCode)
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ; пустое тело при 2xx означает принятое письмо
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		c.log.Info("Mailer: email accepted to=%s, subject=%q, status=%d", to, subject, resp.StatusCode)
		return nil
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if !result.Success {
		return fmt.Errorf("%w: %s", ErrRejected, result.Error)
	}

	c.log.Info("Mailer: email sent to=%s, subject=%q", to, subject)
	return nil
}
