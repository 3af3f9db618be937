package domain

import "time"

// User represents an authoring user. Identity and role resolution happen
// upstream; this record backs the author relationship and the admin check.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidRoles contains all valid user roles.
var ValidRoles = []string{"admin", "user"}

// IsValidRole checks if a role is valid.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// CanAccessAdmin reports whether the user may perform mutating article
// actions. Every mutating path checks this before touching the repository.
func (u *User) CanAccessAdmin() bool {
	return u != nil && u.Role == "admin"
}
