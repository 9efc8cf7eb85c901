package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Reconciliation constants
const (
	// PositionalMatchMaxDays максимальное расстояние в днях между входящей датой
	// и позиционным кандидатом, при котором позиционное сопоставление допустимо
	PositionalMatchMaxDays = 1
)

// Business validation constants
const (
	MinPets                = 1
	MaxPets                = 20
	MaxAdditionalRates     = 25
	MaxOccurrencesPerDraft = 100
	MaxRateTitleLength     = 120
)

// ZeroTaxStates штаты, в которых налог на бронирование не начисляется
// Колорадо освобожден от налога - это бизнес-правило, а не деталь реализации
var ZeroTaxStates = map[string]bool{
	"CO": true,
}

// IsZeroTaxState returns true if bookings in the state are not taxed
func IsZeroTaxState(state string) bool {
	return ZeroTaxStates[state]
}
