package pricing

import "time"

// IsHoliday проверяет, приходится ли дата на праздник с повышенной ставкой.
//
// Определение праздников не реализовано: функция всегда возвращает false,
// и holiday_total во всех расчётах равен нулю. Это осознанная незавершённость,
// унаследованная от продукта - календарь праздников не определён.
// TODO: подключить календарь праздников, когда продукт определит его семантику
func IsHoliday(date time.Time) bool {
	_ = date
	return false
}
