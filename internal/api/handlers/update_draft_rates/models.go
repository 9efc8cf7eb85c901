package update_draft_rates

import (
	"github.com/vlkhvnn/PCM-PricingService/internal/api/handlers"
	updateRates "github.com/vlkhvnn/PCM-PricingService/internal/usecase/update_draft_rates"
)

// OverridesRequest переопределения ставок черновика.
// Пустая строка или отсутствующее поле означает «не переопределять»
type OverridesRequest struct {
	BaseRate             string `json:"baseRate,omitempty"`
	AdditionalAnimalRate string `json:"additionalAnimalRate,omitempty"`
	AppliesAfter         *int   `json:"appliesAfter,omitempty"`
	HolidayRate          string `json:"holidayRate,omitempty"`
	UnitOfTime           string `json:"unitOfTime,omitempty"`
}

// CustomRateRequest ad hoc дополнительная услуга
type CustomRateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Amount      string `json:"amount"`
}

// PetRequest питомец в составе черновика
type PetRequest struct {
	PetID   int64  `json:"petId"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed"`
}

// UpdateDraftRatesRequest запрос на правку ставок черновика
type UpdateDraftRatesRequest struct {
	Version     int64               `json:"version,omitempty"`
	Toggles     map[string]bool     `json:"toggles,omitempty"`
	Overrides   *OverridesRequest   `json:"overrides,omitempty"`
	CustomRates []CustomRateRequest `json:"customRates,omitempty"`
	Pets        []PetRequest        `json:"pets,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateDraftRatesRequest) ToUseCaseRequest(draftID string, userID int64) *updateRates.Request {
	req := &updateRates.Request{
		DraftID: draftID,
		UserID:  userID,
		Version: r.Version,
		Toggles: r.Toggles,
	}

	if r.Overrides != nil {
		req.Overrides = &updateRates.OverridesInput{
			BaseRate:             r.Overrides.BaseRate,
			AdditionalAnimalRate: r.Overrides.AdditionalAnimalRate,
			AppliesAfter:         r.Overrides.AppliesAfter,
			HolidayRate:          r.Overrides.HolidayRate,
			UnitOfTime:           r.Overrides.UnitOfTime,
		}
	}

	for _, cr := range r.CustomRates {
		req.CustomRates = append(req.CustomRates, updateRates.CustomRateInput{
			Title:       cr.Title,
			Description: cr.Description,
			Amount:      cr.Amount,
		})
	}

	if r.Pets != nil {
		req.Pets = make([]updateRates.PetInput, 0, len(r.Pets))
		for _, p := range r.Pets {
			req.Pets = append(req.Pets, updateRates.PetInput{
				PetID:   p.PetID,
				Name:    p.Name,
				Species: p.Species,
				Breed:   p.Breed,
			})
		}
	}

	return req
}

// UpdateDraftRatesResponse ответ с пересчитанным черновиком
type UpdateDraftRatesResponse struct {
	Draft    *handlers.DraftJSON `json:"draft"`
	Warnings []string            `json:"warnings,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *updateRates.Response) *UpdateDraftRatesResponse {
	return &UpdateDraftRatesResponse{
		Draft:    handlers.FromDomainDraft(resp.Draft),
		Warnings: resp.Warnings,
	}
}
