// Package session holds the server-side session store. Clients carry only
// an opaque random token; the authenticated identity lives in redis under
// that token and expires with the cookie.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"authservice/pkg/helpers"
)

// Principal is the authenticated identity resolved from a session. It is
// immutable once resolved; a zero Principal means anonymous.
type Principal struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Store creates, resolves and destroys sessions.
type Store interface {
	Create(ctx context.Context, p Principal) (string, error)
	Get(ctx context.Context, token string) (Principal, bool, error)
	Destroy(ctx context.Context, token string) error
}

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func sessionKey(token string) string { return "session:" + token }

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Create stores the principal under a fresh token with the configured TTL.
func (s *RedisStore) Create(ctx context.Context, p Principal) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	if err := helpers.RedisSetJSON(ctx, s.rdb, sessionKey(token), p, s.ttl); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Get resolves a token to its principal. A missing or expired token is not
// an error; it reports found=false.
func (s *RedisStore) Get(ctx context.Context, token string) (Principal, bool, error) {
	var p Principal
	if token == "" {
		return p, false, nil
	}
	found, err := helpers.RedisGetJSON(ctx, s.rdb, sessionKey(token), &p)
	if err != nil {
		return Principal{}, false, fmt.Errorf("load session: %w", err)
	}
	return p, found, nil
}

// Destroy removes the session. Destroying an absent token succeeds, which
// keeps logout idempotent.
func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := helpers.RedisDel(ctx, s.rdb, sessionKey(token)); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
