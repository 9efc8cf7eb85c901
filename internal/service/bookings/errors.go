package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrDraftNotFound возвращается, когда черновик для сравнения не найден
	ErrDraftNotFound = errors.New("draft not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrPairMismatch возвращается, когда черновик и бронирование
	// принадлежат разным парам (профессионал, клиент)
	ErrPairMismatch = errors.New("draft and booking belong to different parties")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
