package create_draft

import "errors"

var (
	// ErrServiceNotFound возвращается, когда указанная услуга не найдена
	ErrServiceNotFound = errors.New("create_draft: service not found")

	// ErrServiceMismatch возвращается, когда услуга принадлежит другому профессионалу
	ErrServiceMismatch = errors.New("create_draft: service belongs to another professional")

	// ErrAccessDenied возвращается, когда инициатор не является стороной черновика
	ErrAccessDenied = errors.New("create_draft: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_draft: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_draft: internal error")
)
