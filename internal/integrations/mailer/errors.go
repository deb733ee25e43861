package mailer

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailer client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("mailer client: invalid response")

	// ErrRejected возвращается, когда сервис принял запрос, но не отправил письмо
	ErrRejected = errors.New("mailer client: email rejected")
)
