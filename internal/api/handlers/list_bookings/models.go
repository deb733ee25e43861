package list_bookings

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/HallBookingService/internal/service/bookings/models"
	"github.com/m04kA/HallBookingService/pkg/ptr"
)

var (
	errInvalidDate             = errors.New("invalid date")
	errInvalidIncludeCancelled = errors.New("invalid includeCancelled flag")
	errInvalidPaymentStatus    = errors.New("invalid paymentStatus")
)

// parseQuery собирает запрос к сервису из query параметров
// date, from, to - YYYY-MM-DD; status, customer, q - строки;
// paymentStatus - pending|advance|full; includeCancelled - bool
func parseQuery(q url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	var err error
	if req.Date, err = optionalDate(q, "date"); err != nil {
		return nil, err
	}
	if req.From, err = optionalDate(q, "from"); err != nil {
		return nil, err
	}
	if req.To, err = optionalDate(q, "to"); err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(q.Get("status")); v != "" {
		req.Status = ptr.Ptr(v)
	}
	if v := strings.TrimSpace(q.Get("paymentStatus")); v != "" {
		if _, err := models.ToDomainPaymentStatus(v); err != nil {
			return nil, errInvalidPaymentStatus
		}
		req.PaymentStatus = ptr.Ptr(v)
	}
	if v := strings.TrimSpace(q.Get("customer")); v != "" {
		req.CustomerEmail = ptr.Ptr(v)
	}
	req.Query = strings.TrimSpace(q.Get("q"))

	if v := q.Get("includeCancelled"); v != "" {
		include, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errInvalidIncludeCancelled
		}
		req.IncludeCancelled = include
	}

	return req, nil
}

func optionalDate(q url.Values, key string) (*time.Time, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}

	date, err := models.ParseDate(v)
	if err != nil {
		return nil, errInvalidDate
	}
	return &date, nil
}
