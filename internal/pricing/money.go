package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMalformedAmount возвращается, когда строку суммы нельзя разобрать в decimal
var ErrMalformedAmount = errors.New("pricing: malformed currency amount")

// ParseAmount разбирает денежную сумму, которая может прийти как
// decimal-строка ("12.50") или как отформатированная для показа ("$12.50").
// Ведущие символы валюты и пробелы отбрасываются до конвертации.
//
// Вызывающий код трактует ошибку как ноль с предупреждением: частичный,
// но пригодный итог предпочтительнее жёсткого отказа всего расчёта.
func ParseAmount(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Zero, nil
	}

	// Отбрасываем ведущие нечисловые символы ("$", "US$", пробелы)
	start := 0
	for start < len(trimmed) {
		c := trimmed[start]
		if (c >= '0' && c <= '9') || c == '-' || c == '.' {
			break
		}
		start++
	}
	trimmed = strings.ReplaceAll(trimmed[start:], ",", "")

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformedAmount, s)
	}
	return d, nil
}

// FormatAmount форматирует сумму для выдачи наружу: 2 знака, округление half-up
func FormatAmount(d decimal.Decimal) string {
	return d.Round(2).StringFixed(2)
}

// Cents квантует сумму до центов (half-up)
func Cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
