package domain

import (
	"errors"
	"time"
)

const (
	RoleCustomer = "customer"
	RoleAgent    = "agent"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMissingCredentials = errors.New("missing email or password")
var ErrAgentNotFound = errors.New("agent not found")
var ErrMissingAgentName = errors.New("agent name is required")

// User is the sole entity of the account system. PasswordHash is the
// bcrypt output of the user's chosen password; the plaintext is never
// persisted and the hash is never serialized back to callers.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicUser is the projection of a User safe to return to callers:
// name, email and role, nothing else.
type PublicUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Public returns the caller-facing projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{Name: u.Name, Email: u.Email, Role: u.Role}
}

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RoleCustomer || role == RoleAgent
}
