package auth

import (
	"context"
	"time"

	"itda/internal/cache"
)

const loginFailureKeyPrefix = "login_failures:"

// LoginGuardInterface throttles repeated failed logins for one email.
type LoginGuardInterface interface {
	Allowed(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// LoginGuard counts failed logins per email in Redis. Once maxAttempts
// failures fall inside the lockout window further attempts are refused until
// the window expires. When Redis is unreachable logins are never blocked.
type LoginGuard struct {
	cache       *cache.Client
	maxAttempts int
	lockout     time.Duration
}

// Ensure LoginGuard implements LoginGuardInterface
var _ LoginGuardInterface = (*LoginGuard)(nil)

// NewLoginGuard creates a login guard. maxAttempts <= 0 disables throttling.
func NewLoginGuard(cache *cache.Client, maxAttempts int, lockout time.Duration) *LoginGuard {
	return &LoginGuard{cache: cache, maxAttempts: maxAttempts, lockout: lockout}
}

// Allowed reports whether another login attempt may be evaluated.
func (g *LoginGuard) Allowed(ctx context.Context, email string) (bool, error) {
	if g.maxAttempts <= 0 {
		return true, nil
	}
	failures, err := g.cache.Counter(ctx, loginFailureKeyPrefix+email)
	if err != nil {
		return true, nil
	}
	return failures < int64(g.maxAttempts), nil
}

// RecordFailure counts one failed attempt.
func (g *LoginGuard) RecordFailure(ctx context.Context, email string) error {
	if g.maxAttempts <= 0 {
		return nil
	}
	_, err := g.cache.Incr(ctx, loginFailureKeyPrefix+email, g.lockout)
	return err
}

// Reset clears the failure count after a successful login.
func (g *LoginGuard) Reset(ctx context.Context, email string) error {
	return g.cache.Delete(ctx, loginFailureKeyPrefix+email)
}
