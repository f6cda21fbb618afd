package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/vibank/account-system/internal/core/domain"
	"github.com/vibank/account-system/internal/core/ports"
)

// AgentCache abstracts the agent-lookup cache (Redis). A failing cache
// is never surfaced to callers; lookups fall through to the repository.
type AgentCache interface {
	Get(ctx context.Context, name string) (*domain.User, error)
	Put(ctx context.Context, user *domain.User) error
}

// AccountService implements registration, login and agent lookup.
type AccountService struct {
	repo  ports.AccountRepository
	cache AgentCache
	log   zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, cache AgentCache, log zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, cache: cache, log: log}
}

// Register provisions a new account. The user is constructed without a
// hash, the password is hashed separately, and only then is the record
// persisted as a single write — the hash is guaranteed present in the
// insert.
//
// The existence check and the insert are not atomic: two concurrent
// registrations for the same email can both pass the check. The unique
// index on email is the real guard; the losing insert surfaces as
// ErrUserExists from the repository.
func (s *AccountService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrMissingCredentials
	}

	role := in.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrMissingCredentials
	}

	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:      in.Name,
		Email:     in.Email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login verifies credentials against the stored hash. A missing user
// and a password mismatch are indistinguishable to the caller — both
// return ErrInvalidCredentials. Only the diagnostic logs below tell the
// two cases apart.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := s.repo.FindByEmailWithPassword(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug().Str("email", email).Msg("login failed: no user for email")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.log.Debug().Str("email", email).Msg("login failed: password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	s.log.Info().Str("email", email).Msg("login successful")
	return user, nil
}

// LoginByName resolves an agent by case-insensitive exact name match.
// It performs no password check: this is an identity-assertion shortcut
// for the internal agent population, not a security-equivalent login
// path.
func (s *AccountService) LoginByName(ctx context.Context, name string) (*domain.User, error) {
	if name == "" {
		return nil, domain.ErrMissingAgentName
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, name)
		if err != nil {
			s.log.Warn().Err(err).Str("name", name).Msg("agent cache lookup failed, querying store")
		} else if cached != nil {
			return cached, nil
		}
	}

	agent, err := s.repo.FindAgentByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrAgentNotFound
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, agent); err != nil {
			s.log.Warn().Err(err).Str("name", name).Msg("failed to cache agent lookup")
		}
	}

	return agent, nil
}
