package handlers

import "github.com/m04kA/HallBookingService/internal/service/notifications"

// DeliveryResponse результат доставки по одному каналу
type DeliveryResponse struct {
	Channel string `json:"channel"`
	Sent    bool   `json:"sent"`
	Skipped bool   `json:"skipped,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NotificationResponse итог отправки уведомления
type NotificationResponse struct {
	Sent       bool               `json:"sent"`
	Deliveries []DeliveryResponse `json:"deliveries"`
}

// FromReport конвертирует отчет о доставке в DTO; nil - уведомление не отправлялось
func FromReport(report *notifications.Report) *NotificationResponse {
	if report == nil {
		return nil
	}

	resp := &NotificationResponse{
		Sent:       report.Sent(),
		Deliveries: make([]DeliveryResponse, 0, len(report.Deliveries)),
	}
	for _, d := range report.Deliveries {
		resp.Deliveries = append(resp.Deliveries, DeliveryResponse{
			Channel: d.Channel,
			Sent:    d.Sent,
			Skipped: d.Skipped,
			Error:   d.Error,
		})
	}
	return resp
}
