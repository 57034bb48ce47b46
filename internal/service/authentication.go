package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"recipe-app/internal/database"
	"recipe-app/internal/model"
	"recipe-app/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

var (
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

var (
	timeNow              = time.Now
	parseWithClaims      = jwt.ParseWithClaims
	getUserByEmail       = store.GetUserByEmail
	getOrCreateAuthToken = store.GetOrCreateAuthToken
	newTokenKey          = func() string { return ulid.Make().String() }
)

// CustomClaims 定義 JWT 負載內容，jti 為 auth_tokens.key
type CustomClaims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// dummyPasswordHash is compared against when no user matches, so unknown
// emails take as long as wrong passwords.
func dummyPasswordHash() string {
	dummyHashOnce.Do(func() {
		h, err := HashPassword("recipe-app-dummy-password")
		if err == nil {
			dummyHash = h
		}
	})
	return dummyHash
}

// Authenticate 以 email 與密碼驗證使用者，任何失敗都回傳 ErrInvalidCredentials
func Authenticate(ctx context.Context, db database.Querier, email, password string) (*model.User, error) {
	user, err := getUserByEmail(ctx, db, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = ComparePassword(dummyPasswordHash(), password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("Authenticate: %w", err)
	}
	if !CheckPassword(*user, password) || !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// ObtainToken gets or creates the user's token record and signs an access
// token bound to it. It returns the signed token and the record key.
func ObtainToken(ctx context.Context, db database.Querier, user model.User, ttl time.Duration) (string, string, error) {
	rec, err := getOrCreateAuthToken(ctx, db, user.ID, newTokenKey())
	if err != nil {
		return "", "", fmt.Errorf("ObtainToken: %w", err)
	}
	signed, err := IssueAccessToken(user, rec.Key, ttl)
	if err != nil {
		return "", "", fmt.Errorf("ObtainToken: %w", err)
	}
	return signed, rec.Key, nil
}

func signingKey() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}
	return []byte(secret), nil
}

// IssueAccessToken 依據使用者與 token key 產生 JWT，ttl <= 0 時不設 exp
func IssueAccessToken(user model.User, tokenKey string, ttl time.Duration) (string, error) {
	secret, err := signingKey()
	if err != nil {
		return "", err
	}

	now := timeNow()
	claims := CustomClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       tokenKey,
			Subject:  strconv.Itoa(user.ID),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyAccessToken 驗證並解析 JWT。簽章或內容不正確時回傳包裝過的 ErrInvalidToken
func VerifyAccessToken(tokenString string) (*CustomClaims, error) {
	secret, err := signingKey()
	if err != nil {
		return nil, err
	}

	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	}, jwt.WithTimeFunc(timeNow))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ID == "" || claims.UserID <= 0 {
		return nil, fmt.Errorf("%w: missing token key or user", ErrInvalidToken)
	}
	return claims, nil
}
