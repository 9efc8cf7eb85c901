// Package jsondoc содержит JSON-модели снимков, хранящихся в JSONB колонках
// таблиц черновиков и бронирований. Денежные значения сериализуются
// decimal-строками (shopspring/decimal), float через границу не проходит.
package jsondoc

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
	"github.com/vlkhvnn/PCM-PricingService/pkg/types"
)

// Pet снимок животного
type Pet struct {
	PetID   int64  `json:"pet_id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed"`
}

// AdditionalRate дополнительная услуга в снимке ставок
type AdditionalRate struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// RateSchedule снимок расписания ставок occurrence
type RateSchedule struct {
	BaseRate             decimal.Decimal  `json:"base_rate"`
	AdditionalAnimalRate decimal.Decimal  `json:"additional_animal_rate"`
	AppliesAfter         int              `json:"applies_after"`
	HolidayRate          decimal.Decimal  `json:"holiday_rate"`
	UnitOfTime           string           `json:"unit_of_time"`
	AdditionalRates      []AdditionalRate `json:"additional_rates"`
}

// Occurrence снимок одного временного окна
type Occurrence struct {
	OccurrenceID          string          `json:"occurrence_id"`
	StartDate             string          `json:"start_date"` // YYYY-MM-DD
	EndDate               string          `json:"end_date"`
	StartTime             string          `json:"start_time"` // HH:MM
	EndTime               string          `json:"end_time"`
	Rates                 RateSchedule    `json:"rates"`
	Multiple              decimal.Decimal `json:"multiple"`
	BaseTotal             decimal.Decimal `json:"base_total"`
	AdditionalAnimalTotal decimal.Decimal `json:"additional_animal_total"`
	HolidayTotal          decimal.Decimal `json:"holiday_total"`
	CalculatedCost        decimal.Decimal `json:"calculated_cost"`
}

// CostSummary снимок итоговой сводки стоимости
type CostSummary struct {
	Subtotal          decimal.Decimal `json:"subtotal"`
	ClientPlatformFee decimal.Decimal `json:"client_platform_fee"`
	ProPlatformFee    decimal.Decimal `json:"pro_platform_fee"`
	TotalPlatformFee  decimal.Decimal `json:"total_platform_fee"`
	Taxes             decimal.Decimal `json:"taxes"`
	TotalClientCost   decimal.Decimal `json:"total_client_cost"`
	TotalSitterPayout decimal.Decimal `json:"total_sitter_payout"`

	TaxState            string          `json:"tax_state"`
	ClientFeePercentage decimal.Decimal `json:"client_fee_percentage"`
	ProFeePercentage    decimal.Decimal `json:"pro_fee_percentage"`
}

// RateToggle запись карты переключателей дополнительных услуг
type RateToggle struct {
	Applies     bool            `json:"applies"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// RateOverrides переопределения ставок на уровне черновика
type RateOverrides struct {
	BaseRate             *decimal.Decimal `json:"base_rate,omitempty"`
	AdditionalAnimalRate *decimal.Decimal `json:"additional_animal_rate,omitempty"`
	AppliesAfter         *int             `json:"applies_after,omitempty"`
	HolidayRate          *decimal.Decimal `json:"holiday_rate,omitempty"`
	UnitOfTime           *string          `json:"unit_of_time,omitempty"`
}

// FromDomainPets конвертирует животных в JSON-модель
func FromDomainPets(pets []domain.Pet) []Pet {
	out := make([]Pet, 0, len(pets))
	for _, p := range pets {
		out = append(out, Pet{PetID: p.PetID, Name: p.Name, Species: p.Species, Breed: p.Breed})
	}
	return out
}

// ToDomainPets конвертирует JSON-модель в доменных животных
func ToDomainPets(pets []Pet) []domain.Pet {
	out := make([]domain.Pet, 0, len(pets))
	for _, p := range pets {
		out = append(out, domain.Pet{PetID: p.PetID, Name: p.Name, Species: p.Species, Breed: p.Breed})
	}
	return out
}

// FromDomainRates конвертирует расписание ставок в JSON-модель
func FromDomainRates(r domain.RateSchedule) RateSchedule {
	rates := make([]AdditionalRate, 0, len(r.AdditionalRates))
	for _, ar := range r.AdditionalRates {
		rates = append(rates, AdditionalRate{Title: ar.Title, Description: ar.Description, Amount: ar.Amount})
	}
	return RateSchedule{
		BaseRate:             r.BaseRate,
		AdditionalAnimalRate: r.AdditionalAnimalRate,
		AppliesAfter:         r.AppliesAfter,
		HolidayRate:          r.HolidayRate,
		UnitOfTime:           string(r.UnitOfTime),
		AdditionalRates:      rates,
	}
}

// ToDomainRates конвертирует JSON-модель в доменное расписание ставок
func ToDomainRates(r RateSchedule) domain.RateSchedule {
	rates := make([]domain.AdditionalRate, 0, len(r.AdditionalRates))
	for _, ar := range r.AdditionalRates {
		rates = append(rates, domain.AdditionalRate{Title: ar.Title, Description: ar.Description, Amount: ar.Amount})
	}
	return domain.RateSchedule{
		BaseRate:             r.BaseRate,
		AdditionalAnimalRate: r.AdditionalAnimalRate,
		AppliesAfter:         r.AppliesAfter,
		HolidayRate:          r.HolidayRate,
		UnitOfTime:           domain.UnitOfTime(r.UnitOfTime),
		AdditionalRates:      rates,
	}
}

// FromDomainOccurrences конвертирует occurrences в JSON-модель
func FromDomainOccurrences(occs []domain.Occurrence) []Occurrence {
	out := make([]Occurrence, 0, len(occs))
	for i := range occs {
		o := occs[i]
		out = append(out, Occurrence{
			OccurrenceID:          o.OccurrenceID,
			StartDate:             o.StartDate.Format(domain.DateFormat),
			EndDate:               o.EndDate.Format(domain.DateFormat),
			StartTime:             o.StartTime.String(),
			EndTime:               o.EndTime.String(),
			Rates:                 FromDomainRates(o.Rates),
			Multiple:              o.Multiple,
			BaseTotal:             o.BaseTotal,
			AdditionalAnimalTotal: o.AdditionalAnimalTotal,
			HolidayTotal:          o.HolidayTotal,
			CalculatedCost:        o.CalculatedCost,
		})
	}
	return out
}

// ToDomainOccurrences конвертирует JSON-модель в доменные occurrences
// Некорректные даты в снимке - ошибка данных, а не запроса
func ToDomainOccurrences(occs []Occurrence) ([]domain.Occurrence, error) {
	out := make([]domain.Occurrence, 0, len(occs))
	for _, o := range occs {
		startDate, err := time.Parse(domain.DateFormat, o.StartDate)
		if err != nil {
			return nil, err
		}
		endDate, err := time.Parse(domain.DateFormat, o.EndDate)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.Occurrence{
			OccurrenceID:          o.OccurrenceID,
			StartDate:             startDate,
			EndDate:               endDate,
			StartTime:             types.TimeString(o.StartTime),
			EndTime:               types.TimeString(o.EndTime),
			Rates:                 ToDomainRates(o.Rates),
			Multiple:              o.Multiple,
			BaseTotal:             o.BaseTotal,
			AdditionalAnimalTotal: o.AdditionalAnimalTotal,
			HolidayTotal:          o.HolidayTotal,
			CalculatedCost:        o.CalculatedCost,
		})
	}
	return out, nil
}

// FromDomainSummary конвертирует сводку стоимости в JSON-модель
func FromDomainSummary(s *domain.CostSummary) *CostSummary {
	if s == nil {
		return nil
	}
	return &CostSummary{
		Subtotal:            s.Subtotal,
		ClientPlatformFee:   s.ClientPlatformFee,
		ProPlatformFee:      s.ProPlatformFee,
		TotalPlatformFee:    s.TotalPlatformFee,
		Taxes:               s.Taxes,
		TotalClientCost:     s.TotalClientCost,
		TotalSitterPayout:   s.TotalSitterPayout,
		TaxState:            s.TaxState,
		ClientFeePercentage: s.ClientFeePercentage,
		ProFeePercentage:    s.ProFeePercentage,
	}
}

// ToDomainSummary конвертирует JSON-модель в доменную сводку
func ToDomainSummary(s *CostSummary) *domain.CostSummary {
	if s == nil {
		return nil
	}
	return &domain.CostSummary{
		Subtotal:            s.Subtotal,
		ClientPlatformFee:   s.ClientPlatformFee,
		ProPlatformFee:      s.ProPlatformFee,
		TotalPlatformFee:    s.TotalPlatformFee,
		Taxes:               s.Taxes,
		TotalClientCost:     s.TotalClientCost,
		TotalSitterPayout:   s.TotalSitterPayout,
		TaxState:            s.TaxState,
		ClientFeePercentage: s.ClientFeePercentage,
		ProFeePercentage:    s.ProFeePercentage,
	}
}

// FromDomainToggles конвертирует карту переключателей в JSON-модель
func FromDomainToggles(toggles map[string]domain.RateToggle) map[string]RateToggle {
	out := make(map[string]RateToggle, len(toggles))
	for key, t := range toggles {
		out[key] = RateToggle{Applies: t.Applies, Amount: t.Amount, Description: t.Description}
	}
	return out
}

// ToDomainToggles конвертирует JSON-модель в доменную карту переключателей
func ToDomainToggles(toggles map[string]RateToggle) map[string]domain.RateToggle {
	out := make(map[string]domain.RateToggle, len(toggles))
	for key, t := range toggles {
		out[key] = domain.RateToggle{Applies: t.Applies, Amount: t.Amount, Description: t.Description}
	}
	return out
}

// FromDomainOverrides конвертирует переопределения ставок в JSON-модель
func FromDomainOverrides(o domain.RateOverrides) RateOverrides {
	out := RateOverrides{
		BaseRate:             o.BaseRate,
		AdditionalAnimalRate: o.AdditionalAnimalRate,
		AppliesAfter:         o.AppliesAfter,
		HolidayRate:          o.HolidayRate,
	}
	if o.UnitOfTime != nil {
		unit := string(*o.UnitOfTime)
		out.UnitOfTime = &unit
	}
	return out
}

// ToDomainOverrides конвертирует JSON-модель в доменные переопределения
func ToDomainOverrides(o RateOverrides) domain.RateOverrides {
	out := domain.RateOverrides{
		BaseRate:             o.BaseRate,
		AdditionalAnimalRate: o.AdditionalAnimalRate,
		AppliesAfter:         o.AppliesAfter,
		HolidayRate:          o.HolidayRate,
	}
	if o.UnitOfTime != nil {
		unit := domain.UnitOfTime(*o.UnitOfTime)
		out.UnitOfTime = &unit
	}
	return out
}
