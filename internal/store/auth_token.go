package store

import (
	"context"
	"fmt"

	"recipe-app/internal/database"
	"recipe-app/internal/model"
)

// GetOrCreateAuthToken returns the user's token row, inserting one with key
// when the user has none. Concurrent callers all receive the same row.
func GetOrCreateAuthToken(ctx context.Context, db database.Querier, userID int, key string) (*model.AuthToken, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO auth_tokens (key, user_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		 RETURNING key, user_id, created_at`,
		key,
		userID,
	)
	t := &model.AuthToken{}
	if err := row.Scan(&t.Key, &t.UserID, &t.CreatedAt); err != nil {
		return nil, fmt.Errorf("GetOrCreateAuthToken: %w", translate(err))
	}
	return t, nil
}

// GetPrincipalByTokenKey 以 token key 查出對應的使用者
func GetPrincipalByTokenKey(ctx context.Context, db database.Querier, key string) (*model.Principal, error) {
	row := db.QueryRow(ctx,
		`SELECT u.id, u.email, u.is_active, u.is_staff, u.is_superuser, t.key
		 FROM auth_tokens t
		 JOIN users u ON u.id = t.user_id
		 WHERE t.key = $1`,
		key,
	)
	p := &model.Principal{}
	if err := row.Scan(&p.UserID, &p.Email, &p.IsActive, &p.IsStaff, &p.IsSuperuser, &p.TokenKey); err != nil {
		return nil, fmt.Errorf("GetPrincipalByTokenKey: %w", translate(err))
	}
	return p, nil
}
