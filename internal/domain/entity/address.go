// Package entity contains the core business objects of the project.
package entity

// Address is the postal address embedded in a User. It has no identity of
// its own and lives and dies with the owning account.
type Address struct {
	Street  string
	Number  string
	City    string
	ZipCode string
}
