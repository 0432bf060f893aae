package domain

// Default configuration values
const (
	DefaultAdvanceBookingDays = 14   // the booking wizard offers the next two weeks
	DefaultReservationFee     = 2000 // charged when a reservation carries no items
)

// Business validation constants
const (
	MaxItemsPerReservation      = 20
	MaxItemQuantity             = 20
	MaxCancellationReasonLength = 500
	MaxMenuItemsPerKind         = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Roles
type Role string

const (
	RoleCustomer Role = "customer"
	RoleChef     Role = "chef"
	RoleCashier  Role = "cashier"
)

// IsStaff returns true for kitchen and cashier roles
func (r Role) IsStaff() bool {
	return r == RoleChef || r == RoleCashier
}

// IsValid returns true for known roles
func (r Role) IsValid() bool {
	return r == RoleCustomer || r.IsStaff()
}
