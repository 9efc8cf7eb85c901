package promote_draft

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("promote_draft: draft not found")

	// ErrDraftNotPromotable возвращается для уже промоученного или
	// отброшенного черновика
	ErrDraftNotPromotable = errors.New("promote_draft: draft is not promotable")

	// ErrEmptyDraft возвращается при попытке промоутить черновик без occurrences
	ErrEmptyDraft = errors.New("promote_draft: draft has no occurrences")

	// ErrAccessDenied возвращается, когда пользователь не является стороной черновика
	ErrAccessDenied = errors.New("promote_draft: access denied")

	// ErrVersionConflict возвращается при конкурентной правке черновика
	ErrVersionConflict = errors.New("promote_draft: draft was modified concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("promote_draft: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("promote_draft: internal error")
)
