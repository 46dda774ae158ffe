// Package entity contains the core business objects of the project.
package entity

// UserType represents the kind of account a user holds.
type UserType string

const (
	// UserTypeCustomer indicates a regular customer account.
	UserTypeCustomer UserType = "CUSTOMER"
	// UserTypeAdmin indicates an administrative account.
	UserTypeAdmin UserType = "ADMIN"
)

// String returns the string representation of the UserType.
func (t UserType) String() string {
	return string(t)
}

// IsValid checks if the UserType is a known value.
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeCustomer, UserTypeAdmin:
		return true
	default:
		return false
	}
}
