package create_draft

import (
	"github.com/vlkhvnn/PCM-PricingService/internal/api/handlers"
	createDraft "github.com/vlkhvnn/PCM-PricingService/internal/usecase/create_draft"
)

// PetRequest питомец в запросе на создание черновика
type PetRequest struct {
	PetID   int64  `json:"petId"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed"`
}

// CreateDraftRequest запрос на создание черновика
type CreateDraftRequest struct {
	ProfessionalID int64        `json:"professionalId"`
	ClientID       int64        `json:"clientId"`
	ServiceID      int64        `json:"serviceId"`
	Pets           []PetRequest `json:"pets"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateDraftRequest) ToUseCaseRequest(userID int64) *createDraft.Request {
	pets := make([]createDraft.PetInput, 0, len(r.Pets))
	for _, p := range r.Pets {
		pets = append(pets, createDraft.PetInput{
			PetID:   p.PetID,
			Name:    p.Name,
			Species: p.Species,
			Breed:   p.Breed,
		})
	}
	return &createDraft.Request{
		UserID:         userID,
		ProfessionalID: r.ProfessionalID,
		ClientID:       r.ClientID,
		ServiceID:      r.ServiceID,
		Pets:           pets,
	}
}

// CreateDraftResponse ответ с созданным черновиком
type CreateDraftResponse struct {
	Draft          *handlers.DraftJSON `json:"draft"`
	ReplacedDrafts int64               `json:"replacedDrafts"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createDraft.Response) *CreateDraftResponse {
	return &CreateDraftResponse{
		Draft:          handlers.FromDomainDraft(resp.Draft),
		ReplacedDrafts: resp.ReplacedDrafts,
	}
}
