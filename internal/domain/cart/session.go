package cart

import (
	"errors"
	"time"

	"storefront/internal/pkg/clock"

	"github.com/google/uuid"
)

var ErrInvalidSessionTTL = errors.New("cart: session ttl must be positive")

// Session is the anonymous shopping session identified by an opaque cookie token.
type Session struct {
	id        uuid.UUID
	token     string
	createdAt time.Time
	expiresAt time.Time
}

func NewSession(clk clock.Clock, ttl time.Duration) (*Session, error) {
	if ttl <= 0 {
		return nil, ErrInvalidSessionTTL
	}
	now := clk.Now()
	return &Session{
		id:        uuid.New(),
		token:     uuid.NewString(),
		createdAt: now,
		expiresAt: now.Add(ttl),
	}, nil
}

func ReconstructSession(id uuid.UUID, token string, createdAt, expiresAt time.Time) *Session {
	return &Session{
		id:        id,
		token:     token,
		createdAt: createdAt,
		expiresAt: expiresAt,
	}
}

func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.expiresAt)
}

func (s *Session) ID() uuid.UUID        { return s.id }
func (s *Session) Token() string        { return s.token }
func (s *Session) CreatedAt() time.Time { return s.createdAt }
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }
