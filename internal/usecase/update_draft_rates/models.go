package update_draft_rates

import (
	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
)

// OverridesInput переопределения ставок черновика поверх определения услуги.
// Все поля строковые и опциональные: пустая строка означает «не переопределять»
type OverridesInput struct {
	BaseRate             string
	AdditionalAnimalRate string
	AppliesAfter         *int
	HolidayRate          string
	UnitOfTime           string
}

// CustomRateInput ad hoc дополнительная услуга, добавляемая в черновик
type CustomRateInput struct {
	Title       string
	Description string
	Amount      string // decimal-строка, допускается ведущий символ валюты
}

// PetInput питомец, участвующий в бронировании
type PetInput struct {
	PetID   int64
	Name    string
	Species string
	Breed   string
}

// Request модель запроса на правку ставок черновика
type Request struct {
	DraftID string
	UserID  int64
	Version int64 // 0 - без проверки версии

	// Toggles правки applies по ключам существующей карты переключателей.
	// true - услуга добавляется в каждый occurrence, false - снимается со всех
	Toggles map[string]bool

	// Overrides nil - переопределения не трогаем
	Overrides *OverridesInput

	// CustomRates новые ad hoc услуги: добавляются в каждый occurrence
	// и в карту переключателей с applies=true
	CustomRates []CustomRateInput

	// Pets nil - состав питомцев не меняется
	Pets []PetInput
}

// Response модель ответа с пересчитанным черновиком
type Response struct {
	Draft    *domain.Draft
	Warnings []string
}
