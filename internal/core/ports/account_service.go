package ports

import (
	"context"

	"github.com/vibank/account-system/internal/core/domain"
)

// RegisterInput is the fully-populated, validated input for Register.
// Role may be empty, in which case it defaults to customer.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type AccountService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	LoginByName(ctx context.Context, name string) (*domain.User, error)
}
