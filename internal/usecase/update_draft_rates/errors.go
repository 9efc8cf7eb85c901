package update_draft_rates

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("update_draft_rates: draft not found")

	// ErrDraftNotEditable возвращается для промоученного или отброшенного черновика
	ErrDraftNotEditable = errors.New("update_draft_rates: draft is not editable")

	// ErrAccessDenied возвращается, когда пользователь не является стороной черновика
	ErrAccessDenied = errors.New("update_draft_rates: access denied")

	// ErrVersionConflict возвращается при конкурентной правке черновика
	ErrVersionConflict = errors.New("update_draft_rates: draft was modified concurrently")

	// ErrServiceNotFound возвращается, когда услуга черновика не найдена
	ErrServiceNotFound = errors.New("update_draft_rates: service not found")

	// ErrUnknownToggle возвращается при правке несуществующего ключа переключателя
	ErrUnknownToggle = errors.New("update_draft_rates: unknown rate toggle key")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_draft_rates: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_draft_rates: internal error")
)
