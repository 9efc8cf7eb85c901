package update_draft_dates

import (
	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
)

// DateRow одна строка правки дат, как она пришла от клиента
// Все поля строковые: валидация и парсинг выполняются в usecase
type DateRow struct {
	Date      string // YYYY-MM-DD, обязательно
	EndDate   string // YYYY-MM-DD, опционально
	StartTime string // HH:MM, обязательно
	EndTime   string // HH:MM, обязательно
}

// Request модель запроса на пересчёт дат черновика
type Request struct {
	DraftID string
	UserID  int64 // инициатор правки (клиент или профессионал)

	// Version версия черновика, которую видел клиент.
	// 0 - без проверки (клиент не поддерживает версионирование)
	Version int64

	Dates []DateRow
}

// Response модель ответа с пересчитанным черновиком
type Response struct {
	Draft *domain.Draft

	// Warnings строки правок, пропущенные или пересчитанные с ошибкой
	// Частичный успех - норма: предупреждения не валят запрос
	Warnings []string
}
