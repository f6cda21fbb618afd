package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vibank/account-system/internal/core/domain"
)

const agentCacheTTL = 10 * time.Minute

// AgentCache caches agent name lookups in Redis.
// Key format: agent:<name lower-cased>. Only the public fields are
// cached — an agent lookup never needs the password hash.
type AgentCache struct {
	client *redis.Client
}

// NewAgentCache creates an AgentCache wrapping the given Redis client.
func NewAgentCache(client *redis.Client) *AgentCache {
	return &AgentCache{client: client}
}

type cachedAgent struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Get returns the cached agent for name, or nil on a cache miss.
func (c *AgentCache) Get(ctx context.Context, name string) (*domain.User, error) {
	raw, err := c.client.Get(ctx, c.key(name)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("agent cache get: %w", err)
	}

	var entry cachedAgent
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, fmt.Errorf("agent cache decode: %w", err)
	}
	return &domain.User{Name: entry.Name, Email: entry.Email, Role: entry.Role}, nil
}

// Put stores the agent's public fields (expires after agentCacheTTL).
func (c *AgentCache) Put(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(cachedAgent{Name: user.Name, Email: user.Email, Role: user.Role})
	if err != nil {
		return fmt.Errorf("agent cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(user.Name), raw, agentCacheTTL).Err()
}

func (c *AgentCache) key(name string) string {
	return "agent:" + strings.ToLower(name)
}
