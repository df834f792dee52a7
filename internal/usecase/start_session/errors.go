package start_session

import "errors"

var (
	// ErrCatalogUnavailable возвращается, когда каталог недоступен -
	// без справочников мастер запустить нельзя
	ErrCatalogUnavailable = errors.New("start_session: catalog unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("start_session: internal error")
)
