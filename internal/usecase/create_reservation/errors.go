package create_reservation

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("create_reservation: venue not found")

	// ErrUnknownMeal возвращается при неизвестном приёме пищи
	ErrUnknownMeal = errors.New("create_reservation: unknown meal")

	// ErrInvalidTimeSlot возвращается, когда время начала не совпадает со слотом окна
	ErrInvalidTimeSlot = errors.New("create_reservation: invalid time slot")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("create_reservation: date is too far in the future")

	// ErrTooLateToBook возвращается, когда слот уже начался
	ErrTooLateToBook = errors.New("create_reservation: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда в слоте нет свободных мест
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrConsumableNotFound возвращается, когда позиция меню не найдена
	ErrConsumableNotFound = errors.New("create_reservation: consumable not found")

	// ErrConsumableUnavailable возвращается, когда позиция снята с продажи
	ErrConsumableUnavailable = errors.New("create_reservation: consumable is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
