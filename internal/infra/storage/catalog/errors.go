package catalog

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("catalog.repository: venue not found")

	// ErrConsumableNotFound возвращается, когда позиция меню не найдена
	ErrConsumableNotFound = errors.New("catalog.repository: consumable not found")

	// ErrDecode возвращается при ошибке чтения файла каталога
	ErrDecode = errors.New("catalog.repository: failed to decode catalog file")

	// ErrInvalidCatalog возвращается, когда данные каталога не проходят проверку
	ErrInvalidCatalog = errors.New("catalog.repository: invalid catalog data")
)
