package menu

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("venue not found")

	// ErrConsumableNotFound возвращается, когда позиции нет в каталоге
	ErrConsumableNotFound = errors.New("consumable not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrPersistence возвращается, когда меню не удалось прочитать или сохранить
	ErrPersistence = errors.New("service: weekly menu storage failed")
)
