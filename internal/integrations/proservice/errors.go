package proservice

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("proservice client: service not found")

	// ErrAddressNotFound возвращается, когда у профессионала нет адреса обслуживания
	ErrAddressNotFound = errors.New("proservice client: service address not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("proservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("proservice client: invalid response")
)
