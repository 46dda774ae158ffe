// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the core entity of the system, representing a single account.
// The Password field only ever holds the bcrypt hash of the credential;
// plaintext never survives past the usecase boundary.
type User struct {
	ID          int64     // Store-assigned identifier, stable for the lifetime of the account.
	Name        string    // Display name, searchable.
	Email       string    // Unique contact email.
	Login       string    // Unique login, used as the authentication subject.
	Password    string    // Bcrypt hash of the password.
	Type        UserType  // Account type.
	Address     Address   // Embedded postal address.
	CreatedAt   time.Time // Set once at creation, immutable afterwards.
	LastUpdated time.Time // Refreshed on every mutating operation.
}
