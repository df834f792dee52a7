package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не найдена
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrStaleEstimate возвращается, когда запись расчета отклонена
	// из-за более нового уже сохраненного расчета
	ErrStaleEstimate = errors.New("session.repository: stale estimate rejected")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("session.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("session.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("session.repository: failed to scan row")

	// ErrMarshal возвращается при ошибке сериализации JSONB полей
	ErrMarshal = errors.New("session.repository: failed to marshal jsonb")
)
