package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAmountPlainDecimal(t *testing.T) {
	t.Parallel()

	d, err := ParseAmount("12.50")
	require.NoError(t, err)
	require.True(t, d.Equal(dec("12.50")))
}

func TestParseAmountStripsCurrencyPrefix(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"$12.50":      "12.50",
		"US$1,200.00": "1200.00",
		" $0.99":      "0.99",
		"$-5.00":      "-5.00",
	}
	for in, want := range cases {
		d, err := ParseAmount(in)
		require.NoError(t, err, "input %q", in)
		require.True(t, d.Equal(dec(want)), "input %q: got %s", in, d)
	}
}

func TestParseAmountMalformed(t *testing.T) {
	t.Parallel()

	// Опечатка: буква O вместо нуля. Ошибка, сумма ноль - расчёт
	// продолжается, вызывающий код логирует предупреждение
	d, err := ParseAmount("$1O.50")
	require.ErrorIs(t, err, ErrMalformedAmount)
	require.True(t, d.IsZero())
}

func TestParseAmountEmpty(t *testing.T) {
	t.Parallel()

	d, err := ParseAmount("   ")
	require.NoError(t, err)
	require.True(t, d.IsZero())
}

func TestFormatAmountRoundsHalfUp(t *testing.T) {
	t.Parallel()

	require.Equal(t, "12.35", FormatAmount(dec("12.345")))
	require.Equal(t, "12.34", FormatAmount(dec("12.344")))
	require.Equal(t, "100.00", FormatAmount(dec("100")))
}

func TestCents(t *testing.T) {
	t.Parallel()

	require.True(t, Cents(dec("28.005")).Equal(dec("28.01")))
	require.True(t, Cents(dec("28")).Equal(dec("28")))
}
