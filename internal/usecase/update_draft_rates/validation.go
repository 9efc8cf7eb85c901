package update_draft_rates

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
	"github.com/vlkhvnn/PCM-PricingService/internal/pricing"
	"github.com/vlkhvnn/PCM-PricingService/pkg/ptr"
)

func validateRequest(req *Request) error {
	if req.DraftID == "" {
		return fmt.Errorf("%w: draft id is required", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if len(req.Toggles) == 0 && req.Overrides == nil && len(req.CustomRates) == 0 && req.Pets == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if req.Pets != nil {
		if len(req.Pets) < domain.MinPets {
			return fmt.Errorf("%w: at least %d pet is required", ErrInvalidInput, domain.MinPets)
		}
		if len(req.Pets) > domain.MaxPets {
			return fmt.Errorf("%w: at most %d pets are allowed", ErrInvalidInput, domain.MaxPets)
		}
		seen := make(map[int64]bool, len(req.Pets))
		for _, p := range req.Pets {
			if p.PetID <= 0 {
				return fmt.Errorf("%w: pet id is required", ErrInvalidInput)
			}
			if seen[p.PetID] {
				return fmt.Errorf("%w: duplicate pet id %d", ErrInvalidInput, p.PetID)
			}
			seen[p.PetID] = true
		}
	}
	for _, cr := range req.CustomRates {
		if cr.Title == "" {
			return fmt.Errorf("%w: custom rate title is required", ErrInvalidInput)
		}
		if len(cr.Title) > domain.MaxRateTitleLength {
			return fmt.Errorf("%w: custom rate title is too long", ErrInvalidInput)
		}
	}
	return nil
}

// parseOverrides разбирает строковые переопределения в доменную модель.
// Неразбираемая сумма трактуется как «не переопределять» с предупреждением
func parseOverrides(in *OverridesInput) (domain.RateOverrides, []string, error) {
	var out domain.RateOverrides
	var warnings []string

	parse := func(field, value string) *decimal.Decimal {
		if value == "" {
			return nil
		}
		d, err := pricing.ParseAmount(value)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("override %s %q is malformed, kept the service value", field, value))
			return nil
		}
		return ptr.Ptr(d)
	}

	out.BaseRate = parse("base_rate", in.BaseRate)
	out.AdditionalAnimalRate = parse("additional_animal_rate", in.AdditionalAnimalRate)
	out.HolidayRate = parse("holiday_rate", in.HolidayRate)

	if in.AppliesAfter != nil {
		if *in.AppliesAfter < 0 {
			return out, warnings, fmt.Errorf("%w: applies_after must be non-negative", ErrInvalidInput)
		}
		out.AppliesAfter = in.AppliesAfter
	}

	if in.UnitOfTime != "" {
		unit := domain.UnitOfTime(in.UnitOfTime)
		if !unit.IsValid() {
			return out, warnings, fmt.Errorf("%w: unknown unit of time %q", ErrInvalidInput, in.UnitOfTime)
		}
		out.UnitOfTime = ptr.Ptr(unit)
	}

	return out, warnings, nil
}

// parseCustomRates разбирает ad hoc услуги; неразбираемая сумма становится
// нулем с предупреждением, услуга при этом добавляется
func parseCustomRates(in []CustomRateInput) ([]domain.AdditionalRate, []string) {
	rates := make([]domain.AdditionalRate, 0, len(in))
	var warnings []string

	for _, cr := range in {
		amount, err := pricing.ParseAmount(cr.Amount)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("rate %q has malformed amount %q, priced as zero", cr.Title, cr.Amount))
			amount = decimal.Zero
		}
		rates = append(rates, domain.AdditionalRate{
			Title:       cr.Title,
			Description: cr.Description,
			Amount:      amount,
		})
	}

	return rates, warnings
}
