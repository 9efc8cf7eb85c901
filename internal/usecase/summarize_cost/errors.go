package summarize_cost

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("summarize_cost: draft not found")

	// ErrAccessDenied возвращается, когда пользователь не является стороной черновика
	ErrAccessDenied = errors.New("summarize_cost: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("summarize_cost: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("summarize_cost: internal error")
)
