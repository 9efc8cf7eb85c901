package create_draft

import (
	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
)

// PetInput питомец, участвующий в бронировании
type PetInput struct {
	PetID   int64
	Name    string
	Species string
	Breed   string
}

// Request модель запроса на создание черновика
type Request struct {
	UserID         int64 // инициатор (клиент или профессионал)
	ProfessionalID int64
	ClientID       int64
	ServiceID      int64
	Pets           []PetInput
}

// Response модель ответа с созданным черновиком
type Response struct {
	Draft *domain.Draft

	// ReplacedDrafts сколько прежних активных черновиков пары было удалено
	ReplacedDrafts int64
}
