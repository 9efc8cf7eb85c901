package draft

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("draft.repository: draft not found")

	// ErrVersionConflict возвращается, когда версия черновика изменилась
	// между чтением и записью (конкурентная правка той же пары)
	ErrVersionConflict = errors.New("draft.repository: draft version conflict")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("draft.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("draft.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("draft.repository: failed to scan row")

	// ErrMarshalDoc возвращается при ошибке сериализации JSONB документа
	ErrMarshalDoc = errors.New("draft.repository: failed to marshal document")

	// ErrUnmarshalDoc возвращается при ошибке десериализации JSONB документа
	ErrUnmarshalDoc = errors.New("draft.repository: failed to unmarshal document")
)
