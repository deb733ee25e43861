package reports

import "errors"

// ErrInternal возвращается при внутренних ошибках сервиса
var ErrInternal = errors.New("service: internal error")
