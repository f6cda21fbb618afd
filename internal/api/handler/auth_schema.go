package handler

import "github.com/vibank/account-system/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Msg string `json:"msg"`
}

// --- Request / Response types ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"omitempty,oneof=customer agent"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginByNameRequest struct {
	Name string `json:"name"`
}

// userResponse is the transport-owned copy of the public projection.
// It is intentionally separate from the domain type so the JSON
// contract is not coupled to internal changes — and so the password
// hash can structurally never appear in a response.
type userResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// userEnvelope wraps every successful auth response: {"user": {...}}.
type userEnvelope struct {
	User userResponse `json:"user"`
}

func envelope(u domain.PublicUser) userEnvelope {
	return userEnvelope{User: userResponse{Name: u.Name, Email: u.Email, Role: u.Role}}
}
