package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/HallBookingService/internal/domain"
)

var std = New()

// New настраивает validator: имена полей берутся из json-тегов,
// правила hall_email, hall_phone и event_type совпадают с доменными
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "hall_email", func(fl validator.FieldLevel) bool {
		return domain.IsValidEmail(fl.Field().String())
	})
	mustRegister(v, "hall_phone", func(fl validator.FieldLevel) bool {
		return domain.IsValidPhone(fl.Field().String())
	})
	mustRegister(v, "event_type", func(fl validator.FieldLevel) bool {
		return domain.IsKnownEventType(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validate: register %s: %v", tag, err))
	}
}

// Struct проверяет структуру по validate-тегам
// Возвращает сообщения по полям (json-имя -> сообщение) или nil, если ошибок нет
func Struct(s interface{}) (map[string]string, error) {
	err := std.Struct(s)
	if err == nil {
		return nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, err
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = Message(fe)
	}
	return fields, nil
}

// Message формирует человекочитаемое сообщение для ошибки поля
func Message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "hall_email":
		return "invalid email format"
	case "hall_phone":
		return "invalid phone number"
	case "event_type":
		return "unknown event type"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return "is invalid"
	}
}
