package domain

import "fmt"

type UserRole string

const (
	RoleAdmin    UserRole = "Admin"
	RoleEngineer UserRole = "Engineer"
	RoleManager  UserRole = "Manager"
)

// User is one row in the user administration directory.
type User struct {
	ID    string
	Name  string
	Email string
	Role  UserRole
}

// Validate checks that all user fields are populated and the role is known.
func (u *User) Validate() error {
	if u.Name == "" {
		return fmt.Errorf("user name is required")
	}
	if u.Email == "" {
		return fmt.Errorf("user email is required")
	}
	switch u.Role {
	case RoleAdmin, RoleEngineer, RoleManager:
		return nil
	default:
		return fmt.Errorf("unknown role %q (expected Admin, Engineer or Manager)", u.Role)
	}
}
