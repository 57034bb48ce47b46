package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"recipe-app/internal/database"
	"recipe-app/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	require.ErrorIs(t, translate(pgx.ErrNoRows), ErrNotFound)
	require.ErrorIs(t, translate(uniqueErr), ErrDuplicate)
	other := &pgconn.PgError{Code: "23503"}
	require.Same(t, other, translate(other))
	plain := errors.New("x")
	require.Equal(t, plain, translate(plain))
}

func TestGetUserByID(t *testing.T) {
	now := time.Now()
	want := model.User{ID: 7, Email: "a@b.com", Name: "A", PasswordHash: "h", IsActive: true, CreatedAt: now}

	var gotArgs []any
	db := &database.FakeDB{QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
		gotArgs = args
		return &fakeRow{user: want}
	}}
	u, err := GetUserByID(context.Background(), db, 7)
	require.NoError(t, err)
	require.Equal(t, want, *u)
	require.Equal(t, []any{7}, gotArgs)

	db.QueryRowFn = func(ctx context.Context, sql string, args ...any) pgx.Row {
		return &fakeRow{scanErr: pgx.ErrNoRows}
	}
	_, err = GetUserByID(context.Background(), db, 7)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorContains(t, err, "GetUserByID")
}

func TestGetUserByEmail(t *testing.T) {
	want := model.User{ID: 1, Email: "x@y.com", IsStaff: true}
	db := &database.FakeDB{QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
		require.Contains(t, sql, "WHERE email = $1")
		require.Equal(t, "x@y.com", args[0])
		return &fakeRow{user: want}
	}}
	u, err := GetUserByEmail(context.Background(), db, "x@y.com")
	require.NoError(t, err)
	require.True(t, u.IsStaff)

	db.QueryRowFn = func(ctx context.Context, sql string, args ...any) pgx.Row {
		return &fakeRow{scanErr: pgx.ErrNoRows}
	}
	_, err = GetUserByEmail(context.Background(), db, "x@y.com")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateUser(t *testing.T) {
	now := time.Now()
	db := &database.FakeDB{QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
		require.Equal(t, []any{"a@b.com", "A", "hash", true, false, false}, args)
		return &fakeRow{user: model.User{ID: 3, CreatedAt: now}}
	}}
	u, err := CreateUser(context.Background(), db, &model.User{Email: "a@b.com", Name: "A", PasswordHash: "hash", IsActive: true})
	require.NoError(t, err)
	require.Equal(t, 3, u.ID)
	require.Equal(t, now, u.CreatedAt)

	db.QueryRowFn = func(ctx context.Context, sql string, args ...any) pgx.Row {
		return &fakeRow{scanErr: uniqueErr}
	}
	_, err = CreateUser(context.Background(), db, &model.User{Email: "a@b.com"})
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestUpdateUser(t *testing.T) {
	db := &database.FakeDB{ExecFn: func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
		require.NotContains(t, sql, "password_hash")
		require.Equal(t, []any{"n@b.com", "New", 5}, args)
		return pgconn.NewCommandTag("UPDATE 1"), nil
	}}
	require.NoError(t, UpdateUser(context.Background(), db, &model.User{ID: 5, Email: "n@b.com", Name: "New"}))

	db.ExecFn = func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag("UPDATE 0"), nil
	}
	require.ErrorIs(t, UpdateUser(context.Background(), db, &model.User{ID: 5}), ErrNotFound)

	db.ExecFn = func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, uniqueErr
	}
	require.ErrorIs(t, UpdateUser(context.Background(), db, &model.User{ID: 5}), ErrDuplicate)
}

func TestUpdateUserPassword(t *testing.T) {
	db := &database.FakeDB{ExecFn: func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
		require.Equal(t, []any{"newhash", 2}, args)
		return pgconn.NewCommandTag("UPDATE 1"), nil
	}}
	require.NoError(t, UpdateUserPassword(context.Background(), db, 2, "newhash"))

	db.ExecFn = func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, errors.New("db down")
	}
	require.ErrorContains(t, UpdateUserPassword(context.Background(), db, 2, "h"), "db down")

	db.ExecFn = func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag("UPDATE 0"), nil
	}
	require.ErrorIs(t, UpdateUserPassword(context.Background(), db, 2, "h"), ErrNotFound)
}
