package ports

import (
	"context"

	"github.com/vibank/account-system/internal/core/domain"
)

// AccountRepository defines the interface for user persistence.
//
// FindByEmail returns the user without the password hash (the default
// projection); FindByEmailWithPassword explicitly includes it and is
// reserved for credential verification.
type AccountRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByEmailWithPassword(ctx context.Context, email string) (*domain.User, error)
	FindAgentByName(ctx context.Context, name string) (*domain.User, error)
}
