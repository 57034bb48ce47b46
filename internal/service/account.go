package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"recipe-app/internal/database"
	"recipe-app/internal/model"
	"recipe-app/internal/store"
)

var ErrEmailRequired = errors.New("users must have an email address")

var (
	insertUser         = store.CreateUser
	updateUserPassword = store.UpdateUserPassword
)

// NewUser 是建立帳號所需的輸入
type NewUser struct {
	Email       string
	Password    string
	Name        string
	IsStaff     bool
	IsSuperuser bool
}

// NormalizeEmail trims and lower-cases the whole address, local part
// included, so that lookups and the unique index agree. Surrounding
// whitespace is dropped on purpose: " a@b.com" and "a@b.com" are one account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser hashes the password and stores an active user with a normalized
// email. A duplicate email surfaces as store.ErrDuplicate.
func CreateUser(ctx context.Context, db database.Querier, nu NewUser) (*model.User, error) {
	if strings.TrimSpace(nu.Email) == "" {
		return nil, ErrEmailRequired
	}
	hash, err := HashPassword(nu.Password)
	if err != nil {
		return nil, fmt.Errorf("CreateUser: hash password: %w", err)
	}

	u := &model.User{
		Email:        NormalizeEmail(nu.Email),
		Name:         nu.Name,
		PasswordHash: hash,
		IsActive:     true,
		IsStaff:      nu.IsStaff,
		IsSuperuser:  nu.IsSuperuser,
	}
	return insertUser(ctx, db, u)
}

// CreateSuperuser is CreateUser with both staff and superuser set.
func CreateSuperuser(ctx context.Context, db database.Querier, email, password, name string) (*model.User, error) {
	return CreateUser(ctx, db, NewUser{
		Email:       email,
		Password:    password,
		Name:        name,
		IsStaff:     true,
		IsSuperuser: true,
	})
}

// CheckPassword reports whether candidate matches the user's stored hash.
func CheckPassword(u model.User, candidate string) bool {
	return ComparePassword(u.PasswordHash, candidate) == nil
}

// SetPassword 重新雜湊並寫入新密碼
func SetPassword(ctx context.Context, db database.Querier, userID int, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("SetPassword: hash password: %w", err)
	}
	return updateUserPassword(ctx, db, userID, hash)
}
