package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrMarshalDoc возвращается при ошибке сериализации JSONB документа
	ErrMarshalDoc = errors.New("booking.repository: failed to marshal document")

	// ErrUnmarshalDoc возвращается при ошибке десериализации JSONB документа
	ErrUnmarshalDoc = errors.New("booking.repository: failed to unmarshal document")
)
