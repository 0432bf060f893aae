package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrVenueNotFound возвращается, когда площадка бронирования не найдена
	ErrVenueNotFound = errors.New("venue not found")

	// ErrSlotUnavailable возвращается, когда в слоте не осталось мест
	ErrSlotUnavailable = errors.New("slot has no availability")

	// ErrInvalidTransition возвращается при недопустимой смене статуса
	ErrInvalidTransition = errors.New("invalid reservation status transition")

	// ErrNotEditable возвращается при попытке изменить неактивное бронирование
	ErrNotEditable = errors.New("reservation is not active")

	// ErrDuplicateReservation возвращается при повторном использовании ID
	ErrDuplicateReservation = errors.New("reservation already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrNotInitialized возвращается до загрузки состояния через Init
	ErrNotInitialized = errors.New("reservation store is not initialized")

	// ErrPersistence возвращается, когда изменение не удалось сохранить (изменение откатывается)
	ErrPersistence = errors.New("service: failed to persist reservation")
)
