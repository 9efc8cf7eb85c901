package costing

import "errors"

var (
	// ErrFeeLookup возвращается при недоступности сервиса комиссий
	// Молчаливый дефолт комиссий недопустим - это жёсткая ошибка
	ErrFeeLookup = errors.New("costing.service: fee policy lookup failed")

	// ErrAddressLookup возвращается, когда адрес профессионала не разрешился
	ErrAddressLookup = errors.New("costing.service: service address lookup failed")

	// ErrTaxLookup возвращается при недоступности налогового сервиса
	ErrTaxLookup = errors.New("costing.service: tax policy lookup failed")
)
