package create_draft

import (
	"fmt"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professional_id is required", ErrInvalidInput)
	}
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: client_id is required", ErrInvalidInput)
	}
	if req.ProfessionalID == req.ClientID {
		return fmt.Errorf("%w: professional and client must differ", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: service_id is required", ErrInvalidInput)
	}
	if req.UserID != req.ProfessionalID && req.UserID != req.ClientID {
		return ErrAccessDenied
	}
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

	return nil
}
