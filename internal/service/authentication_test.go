package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"recipe-app/internal/database"
	"recipe-app/internal/model"
	"recipe-app/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func stubUserByEmail(t *testing.T, u *model.User) {
	t.Helper()
	getUserByEmail = func(ctx context.Context, db database.Querier, email string) (*model.User, error) {
		if u == nil || email != u.Email {
			return nil, fmt.Errorf("GetUserByEmail: %w", store.ErrNotFound)
		}
		cp := *u
		return &cp, nil
	}
}

func TestAuthenticate(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hash, err := HashPassword("testpass123")
	require.NoError(t, err)
	stubUserByEmail(t, &model.User{ID: 2, Email: "test@example.com", PasswordHash: hash, IsActive: true})
	ctx := context.Background()

	u, err := Authenticate(ctx, &database.FakeDB{}, "Test@Example.com", "testpass123")
	require.NoError(t, err)
	require.Equal(t, 2, u.ID)

	_, err = Authenticate(ctx, &database.FakeDB{}, "test@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = Authenticate(ctx, &database.FakeDB{}, "nobody@example.com", "testpass123")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = Authenticate(ctx, &database.FakeDB{}, "test@example.com", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateInactiveUser(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hash, _ := HashPassword("pw123")
	stubUserByEmail(t, &model.User{ID: 2, Email: "off@example.com", PasswordHash: hash, IsActive: false})

	_, err := Authenticate(context.Background(), &database.FakeDB{}, "off@example.com", "pw123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateStoreError(t *testing.T) {
	t.Cleanup(restoreGlobals)
	getUserByEmail = func(context.Context, database.Querier, string) (*model.User, error) {
		return nil, errors.New("db down")
	}
	_, err := Authenticate(context.Background(), &database.FakeDB{}, "a@b.com", "pw")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidCredentials)
}

func parseClaims(t *testing.T, tok, secret string) *CustomClaims {
	t.Helper()
	claims := &CustomClaims{}
	_, err := jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) { return []byte(secret), nil })
	require.NoError(t, err)
	return claims
}

func TestIssueAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	t.Setenv("JWT_SECRET", "")
	_, err := IssueAccessToken(model.User{}, "k", time.Minute)
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "s")
	tok, err := IssueAccessToken(model.User{ID: 5}, "key-5", time.Minute)
	require.NoError(t, err)
	claims := parseClaims(t, tok, "s")
	require.Equal(t, 5, claims.UserID)
	require.Equal(t, "key-5", claims.ID)
	require.Equal(t, "5", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)

	tok, err = IssueAccessToken(model.User{ID: 5}, "key-5", 0)
	require.NoError(t, err)
	require.Nil(t, parseClaims(t, tok, "s").ExpiresAt)
}

func TestVerifyAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	t.Setenv("JWT_SECRET", "")
	_, err := VerifyAccessToken("abc")
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "s")
	_, err = VerifyAccessToken("invalid")
	require.ErrorIs(t, err, ErrInvalidToken)

	tokNone, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": 1, "jti": "k"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	_, err = VerifyAccessToken(tokNone)
	require.ErrorIs(t, err, ErrInvalidToken)

	t.Setenv("JWT_SECRET", "other")
	foreign, _ := IssueAccessToken(model.User{ID: 3}, "k", 0)
	t.Setenv("JWT_SECRET", "s")
	_, err = VerifyAccessToken(foreign)
	require.ErrorIs(t, err, ErrInvalidToken)

	noKey, _ := IssueAccessToken(model.User{ID: 3}, "", 0)
	_, err = VerifyAccessToken(noKey)
	require.ErrorIs(t, err, ErrInvalidToken)

	parseWithClaims = func(s string, c jwt.Claims, k jwt.Keyfunc, opts ...jwt.ParserOption) (*jwt.Token, error) {
		return &jwt.Token{Claims: jwt.MapClaims{}, Valid: false}, nil
	}
	_, err = VerifyAccessToken("whatever")
	require.ErrorIs(t, err, ErrInvalidToken)

	parseWithClaims = jwt.ParseWithClaims
	tok, _ := IssueAccessToken(model.User{ID: 3}, "key-3", time.Minute)
	claims, err := VerifyAccessToken(tok)
	require.NoError(t, err)
	require.Equal(t, 3, claims.UserID)
	require.Equal(t, "key-3", claims.ID)
}

func TestVerifyAccessTokenExpired(t *testing.T) {
	t.Cleanup(restoreGlobals)
	t.Setenv("JWT_SECRET", "s")
	issued := time.Now()
	timeNow = func() time.Time { return issued }
	tok, err := IssueAccessToken(model.User{ID: 1}, "k", time.Minute)
	require.NoError(t, err)

	_, err = VerifyAccessToken(tok)
	require.NoError(t, err)

	timeNow = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = VerifyAccessToken(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestObtainToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	t.Setenv("JWT_SECRET", "s")
	newTokenKey = func() string { return "fresh" }

	var candidate string
	getOrCreateAuthToken = func(ctx context.Context, db database.Querier, userID int, key string) (*model.AuthToken, error) {
		candidate = key
		return &model.AuthToken{Key: "existing", UserID: userID}, nil
	}
	tok, key, err := ObtainToken(context.Background(), &database.FakeDB{}, model.User{ID: 8}, 0)
	require.NoError(t, err)
	require.Equal(t, "fresh", candidate)
	require.Equal(t, "existing", key)

	claims, err := VerifyAccessToken(tok)
	require.NoError(t, err)
	require.Equal(t, "existing", claims.ID)
	require.Equal(t, 8, claims.UserID)

	getOrCreateAuthToken = func(context.Context, database.Querier, int, string) (*model.AuthToken, error) {
		return nil, errors.New("db")
	}
	_, _, err = ObtainToken(context.Background(), &database.FakeDB{}, model.User{ID: 8}, 0)
	require.ErrorContains(t, err, "ObtainToken")

	getOrCreateAuthToken = func(ctx context.Context, db database.Querier, userID int, key string) (*model.AuthToken, error) {
		return &model.AuthToken{Key: key, UserID: userID}, nil
	}
	t.Setenv("JWT_SECRET", "")
	_, _, err = ObtainToken(context.Background(), &database.FakeDB{}, model.User{ID: 8}, 0)
	require.ErrorContains(t, err, "JWT_SECRET")
}

func TestNewTokenKeyIsULID(t *testing.T) {
	a, b := newTokenKey(), newTokenKey()
	require.Len(t, a, 26)
	require.NotEqual(t, a, b)
}
