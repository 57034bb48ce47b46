package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"recipe-app/internal/cache"
	"recipe-app/internal/database"
	"recipe-app/internal/model"
	"recipe-app/internal/store"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var (
	jsonMarshal            = json.Marshal
	jsonUnmarshal          = json.Unmarshal
	getPrincipalByTokenKey = store.GetPrincipalByTokenKey
)

func principalKey(tokenKey string) string {
	return "principal:" + tokenKey
}

// ResolvePrincipal maps verified claims to the current user. The cache is
// consulted first; on a miss the token row is looked up and, when it still
// belongs to an active user, cached for ttl. Cache failures are logged and
// fall back to the database.
func ResolvePrincipal(ctx context.Context, db database.Querier, c cache.Cache, claims *CustomClaims, ttl time.Duration) (*model.Principal, error) {
	key := principalKey(claims.ID)

	raw, err := c.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var p model.Principal
		if err := jsonUnmarshal(raw, &p); err == nil && p.UserID == claims.UserID && p.IsActive {
			return &p, nil
		}
		log.Warn().Str("key", key).Msg("discarding unusable cached principal")
	case !errors.Is(err, redis.Nil):
		log.Warn().Err(err).Str("key", key).Msg("principal cache read failed")
	}

	p, err := getPrincipalByTokenKey(ctx, db, claims.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("ResolvePrincipal: %w", err)
	}
	if p.UserID != claims.UserID || !p.IsActive {
		return nil, ErrInvalidToken
	}

	if err := CachePrincipal(ctx, c, p, ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("principal cache write failed")
	}
	return p, nil
}

// CachePrincipal 將 principal 以 JSON 寫入快取
func CachePrincipal(ctx context.Context, c cache.Cache, p *model.Principal, ttl time.Duration) error {
	data, err := jsonMarshal(p)
	if err != nil {
		return fmt.Errorf("CachePrincipal: %w", err)
	}
	if err := c.Set(ctx, principalKey(p.TokenKey), data, ttl).Err(); err != nil {
		return fmt.Errorf("CachePrincipal: %w", err)
	}
	return nil
}

// WarmPrincipal loads the principal of tokenKey and caches it.
func WarmPrincipal(ctx context.Context, db database.Querier, c cache.Cache, tokenKey string, ttl time.Duration) error {
	p, err := getPrincipalByTokenKey(ctx, db, tokenKey)
	if err != nil {
		return fmt.Errorf("WarmPrincipal: %w", err)
	}
	return CachePrincipal(ctx, c, p, ttl)
}

// ForgetPrincipal drops the cached principal so the next request reloads it.
func ForgetPrincipal(ctx context.Context, c cache.Cache, tokenKey string) error {
	if err := c.Del(ctx, principalKey(tokenKey)).Err(); err != nil {
		return fmt.Errorf("ForgetPrincipal: %w", err)
	}
	return nil
}
