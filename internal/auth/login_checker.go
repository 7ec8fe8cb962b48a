package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// Session returns the live session of token, or nil when the token is unknown or expired.
func (lc *LoginChecker) Session(ctx context.Context, token string) (*Session, error) {
	session, err := getSession(ctx, lc.redisClient, token)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if time.Since(time.Unix(session.CreatedAt, 0)) > lc.ttl {
		return nil, nil
	}

	return session, nil
}
