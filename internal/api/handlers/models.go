package handlers

import (
	"time"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
	"github.com/vlkhvnn/PCM-PricingService/internal/pricing"
)

// Wire-модели, общие для всех handlers.
// Денежные суммы сериализуются строками с двумя знаками (half-up),
// multiple - строкой с пятью знаками: доли единиц тарификации

// PetJSON питомец в составе черновика или бронирования
type PetJSON struct {
	PetID   int64  `json:"petId"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed"`
}

// AdditionalRateJSON дополнительная услуга occurrence
type AdditionalRateJSON struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Amount      string `json:"amount"`
}

// RateScheduleJSON расписание ставок, которым был рассчитан occurrence
type RateScheduleJSON struct {
	BaseRate             string               `json:"baseRate"`
	AdditionalAnimalRate string               `json:"additionalAnimalRate"`
	AppliesAfter         int                  `json:"appliesAfter"`
	HolidayRate          string               `json:"holidayRate"`
	UnitOfTime           string               `json:"unitOfTime"`
	AdditionalRates      []AdditionalRateJSON `json:"additionalRates"`
}

// OccurrenceJSON одно временное окно бронирования с разбивкой стоимости
type OccurrenceJSON struct {
	OccurrenceID          string           `json:"occurrenceId"`
	StartDate             string           `json:"startDate"` // YYYY-MM-DD
	EndDate               string           `json:"endDate"`   // YYYY-MM-DD
	StartTime             string           `json:"startTime"` // HH:MM
	EndTime               string           `json:"endTime"`   // HH:MM
	Rates                 RateScheduleJSON `json:"rates"`
	Multiple              string           `json:"multiple"`
	BaseTotal             string           `json:"baseTotal"`
	AdditionalAnimalTotal string           `json:"additionalAnimalTotal"`
	HolidayTotal          string           `json:"holidayTotal"`
	CalculatedCost        string           `json:"calculatedCost"`
}

// RateToggleJSON запись карты переключателей дополнительных услуг
type RateToggleJSON struct {
	Applies     bool   `json:"applies"`
	Amount      string `json:"amount"`
	Description string `json:"description,omitempty"`
}

// CostSummaryJSON агрегированная сводка стоимости
type CostSummaryJSON struct {
	Subtotal          string `json:"subtotal"`
	ClientPlatformFee string `json:"clientPlatformFee"`
	ProPlatformFee    string `json:"proPlatformFee"`
	TotalPlatformFee  string `json:"totalPlatformFee"`
	Taxes             string `json:"taxes"`
	TotalClientCost   string `json:"totalClientCost"`
	TotalSitterPayout string `json:"totalSitterPayout"`

	TaxState            string `json:"taxState,omitempty"`
	ClientFeePercentage string `json:"clientFeePercentage"`
	ProFeePercentage    string `json:"proFeePercentage"`
}

// DraftJSON черновик бронирования
type DraftJSON struct {
	DraftID        string `json:"draftId"`
	ProfessionalID int64  `json:"professionalId"`
	ClientID       int64  `json:"clientId"`
	Status         string `json:"status"`

	ServiceID   int64  `json:"serviceId"`
	ServiceName string `json:"serviceName"`

	AdditionalRates map[string]RateToggleJSON `json:"additionalRates"`
	Pets            []PetJSON                 `json:"pets"`
	Occurrences     []OccurrenceJSON          `json:"occurrences"`
	CostSummary     *CostSummaryJSON          `json:"costSummary,omitempty"`

	Version   int64  `json:"version"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// BookingJSON подтверждённое бронирование
type BookingJSON struct {
	ID             int64  `json:"id"`
	ProfessionalID int64  `json:"professionalId"`
	ClientID       int64  `json:"clientId"`
	Status         string `json:"status"`

	ServiceID   int64  `json:"serviceId"`
	ServiceName string `json:"serviceName"`

	Pets        []PetJSON        `json:"pets"`
	Occurrences []OccurrenceJSON `json:"occurrences"`
	CostSummary *CostSummaryJSON `json:"costSummary,omitempty"`

	PromotedFromDraftID *string `json:"promotedFromDraftId,omitempty"`
	RequiresApproval    bool    `json:"requiresApproval"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromDomainDraft конвертирует доменный черновик в wire-модель
func FromDomainDraft(d *domain.Draft) *DraftJSON {
	toggles := make(map[string]RateToggleJSON, len(d.AdditionalRateToggles))
	for key, t := range d.AdditionalRateToggles {
		toggles[key] = RateToggleJSON{
			Applies:     t.Applies,
			Amount:      pricing.FormatAmount(t.Amount),
			Description: t.Description,
		}
	}

	return &DraftJSON{
		DraftID:         d.DraftID,
		ProfessionalID:  d.ProfessionalID,
		ClientID:        d.ClientID,
		Status:          string(d.Status),
		ServiceID:       d.ServiceID,
		ServiceName:     d.ServiceName,
		AdditionalRates: toggles,
		Pets:            fromDomainPets(d.Pets),
		Occurrences:     fromDomainOccurrences(d.Occurrences),
		CostSummary:     FromDomainCostSummary(d.CostSummary),
		Version:         d.Version,
		CreatedAt:       formatTimestamp(d.CreatedAt),
		UpdatedAt:       formatTimestamp(d.UpdatedAt),
	}
}

// FromDomainBooking конвертирует доменное бронирование в wire-модель
func FromDomainBooking(b *domain.Booking) *BookingJSON {
	return &BookingJSON{
		ID:                  b.ID,
		ProfessionalID:      b.ProfessionalID,
		ClientID:            b.ClientID,
		Status:              string(b.Status),
		ServiceID:           b.ServiceID,
		ServiceName:         b.ServiceName,
		Pets:                fromDomainPets(b.Pets),
		Occurrences:         fromDomainOccurrences(b.Occurrences),
		CostSummary:         FromDomainCostSummary(b.CostSummary),
		PromotedFromDraftID: b.PromotedFromDraftID,
		RequiresApproval:    b.RequiresApproval,
		CreatedAt:           formatTimestamp(b.CreatedAt),
		UpdatedAt:           formatTimestamp(b.UpdatedAt),
	}
}

// FromDomainCostSummary конвертирует сводку стоимости в wire-модель
func FromDomainCostSummary(s *domain.CostSummary) *CostSummaryJSON {
	if s == nil {
		return nil
	}
	return &CostSummaryJSON{
		Subtotal:            pricing.FormatAmount(s.Subtotal),
		ClientPlatformFee:   pricing.FormatAmount(s.ClientPlatformFee),
		ProPlatformFee:      pricing.FormatAmount(s.ProPlatformFee),
		TotalPlatformFee:    pricing.FormatAmount(s.TotalPlatformFee),
		Taxes:               pricing.FormatAmount(s.Taxes),
		TotalClientCost:     pricing.FormatAmount(s.TotalClientCost),
		TotalSitterPayout:   pricing.FormatAmount(s.TotalSitterPayout),
		TaxState:            s.TaxState,
		ClientFeePercentage: s.ClientFeePercentage.String(),
		ProFeePercentage:    s.ProFeePercentage.String(),
	}
}

func fromDomainPets(pets []domain.Pet) []PetJSON {
	out := make([]PetJSON, 0, len(pets))
	for _, p := range pets {
		out = append(out, PetJSON{PetID: p.PetID, Name: p.Name, Species: p.Species, Breed: p.Breed})
	}
	return out
}

func fromDomainOccurrences(occurrences []domain.Occurrence) []OccurrenceJSON {
	out := make([]OccurrenceJSON, 0, len(occurrences))
	for i := range occurrences {
		occ := &occurrences[i]

		rates := make([]AdditionalRateJSON, 0, len(occ.Rates.AdditionalRates))
		for _, ar := range occ.Rates.AdditionalRates {
			rates = append(rates, AdditionalRateJSON{
				Title:       ar.Title,
				Description: ar.Description,
				Amount:      pricing.FormatAmount(ar.Amount),
			})
		}

		out = append(out, OccurrenceJSON{
			OccurrenceID: occ.OccurrenceID,
			StartDate:    occ.StartDate.Format(domain.DateFormat),
			EndDate:      occ.EndDate.Format(domain.DateFormat),
			StartTime:    string(occ.StartTime),
			EndTime:      string(occ.EndTime),
			Rates: RateScheduleJSON{
				BaseRate:             pricing.FormatAmount(occ.Rates.BaseRate),
				AdditionalAnimalRate: pricing.FormatAmount(occ.Rates.AdditionalAnimalRate),
				AppliesAfter:         occ.Rates.AppliesAfter,
				HolidayRate:          pricing.FormatAmount(occ.Rates.HolidayRate),
				UnitOfTime:           string(occ.Rates.UnitOfTime),
				AdditionalRates:      rates,
			},
			Multiple:              occ.Multiple.String(),
			BaseTotal:             pricing.FormatAmount(occ.BaseTotal),
			AdditionalAnimalTotal: pricing.FormatAmount(occ.AdditionalAnimalTotal),
			HolidayTotal:          pricing.FormatAmount(occ.HolidayTotal),
			CalculatedCost:        pricing.FormatAmount(occ.CalculatedCost),
		})
	}
	return out
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
