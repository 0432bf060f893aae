package catalog

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("venue not found")

	// ErrConsumableNotFound возвращается, когда позиция меню не найдена
	ErrConsumableNotFound = errors.New("consumable not found")

	// ErrConsumableUnavailable возвращается, когда позиция снята с продажи
	ErrConsumableUnavailable = errors.New("consumable is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
