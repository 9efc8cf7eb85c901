package update_draft_dates

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("update_draft_dates: draft not found")

	// ErrDraftNotEditable возвращается для промоученного или отброшенного черновика
	ErrDraftNotEditable = errors.New("update_draft_dates: draft is not editable")

	// ErrAccessDenied возвращается, когда пользователь не является стороной черновика
	ErrAccessDenied = errors.New("update_draft_dates: access denied")

	// ErrVersionConflict возвращается при конкурентной правке черновика
	ErrVersionConflict = errors.New("update_draft_dates: draft was modified concurrently")

	// ErrServiceNotFound возвращается, когда услуга черновика не найдена
	ErrServiceNotFound = errors.New("update_draft_dates: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	// (неразбираемая дата, отрицательная длительность, отсутствующий список дат)
	ErrInvalidInput = errors.New("update_draft_dates: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_draft_dates: internal error")
)
