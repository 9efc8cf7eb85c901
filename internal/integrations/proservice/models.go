package proservice

import (
	"github.com/shopspring/decimal"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdditionalRate дополнительная услуга из определения сервиса
// Суммы приходят decimal-строками ("12.50"), без символов валюты
type AdditionalRate struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Service определение услуги профессионала из ProService
type Service struct {
	ID                   int64            `json:"id"`
	ProfessionalID       int64            `json:"professional_id"`
	Name                 string           `json:"name"`
	UnitOfTime           string           `json:"unit_of_time"`
	BaseRate             decimal.Decimal  `json:"base_rate"`
	AdditionalAnimalRate decimal.Decimal  `json:"additional_animal_rate"`
	AppliesAfter         int              `json:"applies_after"`
	HolidayRate          decimal.Decimal  `json:"holiday_rate"`
	AdditionalRates      []AdditionalRate `json:"additional_rates"`
}

// Address адрес обслуживания профессионала
type Address struct {
	ProfessionalID int64  `json:"professional_id"`
	City           string `json:"city"`
	State          string `json:"state"`
	ZipCode        string `json:"zip_code"`
}

// ErrorResponse модель ошибки от ProService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToRateSchedule конвертирует определение услуги в расписание ставок
func (s *Service) ToRateSchedule() domain.RateSchedule {
	rates := make([]domain.AdditionalRate, 0, len(s.AdditionalRates))
	for _, ar := range s.AdditionalRates {
		rates = append(rates, domain.AdditionalRate{
			Title:       ar.Title,
			Description: ar.Description,
			Amount:      ar.Amount,
		})
	}

	return domain.RateSchedule{
		BaseRate:             s.BaseRate,
		AdditionalAnimalRate: s.AdditionalAnimalRate,
		AppliesAfter:         s.AppliesAfter,
		HolidayRate:          s.HolidayRate,
		UnitOfTime:           domain.UnitOfTime(s.UnitOfTime),
		AdditionalRates:      rates,
	}
}
