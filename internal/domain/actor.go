package domain

// Actor пользователь, выполняющий операцию (из заголовков X-User-ID и X-User-Role)
type Actor struct {
	UserID string
	Role   Role
}

// CanView владелец или сотрудник столовой
func (a Actor) CanView(r *Reservation) bool {
	return r.UserID == a.UserID || a.Role.IsStaff()
}

// CanCancel владелец или кассир
func (a Actor) CanCancel(r *Reservation) bool {
	return r.UserID == a.UserID || a.Role == RoleCashier
}

// CanEdit владелец меняет позиции и способ оплаты своего бронирования, кассир любого
func (a Actor) CanEdit(r *Reservation) bool {
	return r.UserID == a.UserID || a.Role == RoleCashier
}

// CanFinalize только кассир принимает оплату
func (a Actor) CanFinalize() bool {
	return a.Role == RoleCashier
}

// CanListUser свои бронирования или любые для сотрудника
func (a Actor) CanListUser(userID string) bool {
	return a.UserID == userID || a.Role.IsStaff()
}

// CanListVenue повар и кассир видят бронирования площадки
func (a Actor) CanListVenue() bool {
	return a.Role.IsStaff()
}

// CanEditMenu недельное меню составляет только повар
func (a Actor) CanEditMenu() bool {
	return a.Role == RoleChef
}
