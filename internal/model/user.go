// Package model defines the wire types shared between the API client and the views.
package model

// Role is the closed set of user roles known to the client.
type Role string

const (
	// RoleUser is the default role assigned at registration.
	RoleUser Role = "user"
	// RoleAdmin grants access to the admin views and user management.
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// BootstrapAdminID is the reserved administrative account created at first
// backend startup. It can never be deleted, and the client refuses to issue
// the delete call for it regardless of server-side enforcement.
const BootstrapAdminID = 1

// User represents an account as returned by the backend.
type User struct {
	ID        int64    `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Role      Role     `json:"role"`
	IsActive  bool     `json:"is_active"`
	CreatedAt DateTime `json:"created_at"`
}

// UserUpdate carries the admin-editable account fields. Nil fields are
// omitted from the request and left unchanged by the backend.
type UserUpdate struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *Role   `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
