package money

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrency валюта по умолчанию
const DefaultCurrency = "LKR"

// Formatter форматирует суммы в единой валюте отображения без дробной части
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// NewFormatter создаёт форматтер для ISO-кода валюты
func NewFormatter(code string) (*Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("invalid currency code %q: %w", code, err)
	}

	return &Formatter{
		unit:    unit,
		printer: message.NewPrinter(language.English),
	}, nil
}

// MustFormatter как NewFormatter, но паникует при ошибке
func MustFormatter(code string) *Formatter {
	f, err := NewFormatter(code)
	if err != nil {
		panic(err)
	}
	return f
}

// Code возвращает ISO-код валюты
func (f *Formatter) Code() string {
	return f.unit.String()
}

// Format возвращает сумму в виде "LKR 450,000"
func (f *Formatter) Format(amount int64) string {
	if amount < 0 {
		return "-" + f.Format(-amount)
	}
	return fmt.Sprintf("%s %s", f.unit.String(), f.printer.Sprintf("%d", amount))
}

// BackOutTax выделяет из суммы, включающей налог, базовую часть и налог
// subtotal = round(gross / (1 + rate)), tax = gross - subtotal
func BackOutTax(gross int64, rate float64) (subtotal, tax int64) {
	if rate <= 0 {
		return gross, 0
	}
	subtotal = int64(math.Round(float64(gross) / (1 + rate)))
	return subtotal, gross - subtotal
}
