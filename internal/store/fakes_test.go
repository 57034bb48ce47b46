package store

import (
	"time"

	"recipe-app/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- 假實作 ---------- */

// fakeRow 實作 pgx.Row，依 dest 數量決定要填入哪些欄位。
type fakeRow struct {
	scanErr   error
	user      model.User
	token     model.AuthToken
	principal model.Principal
	id        int
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	switch len(dest) {
	case 8:
		// scanUser
		u := r.user
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Email
		*dest[2].(*string) = u.Name
		*dest[3].(*string) = u.PasswordHash
		*dest[4].(*bool) = u.IsActive
		*dest[5].(*bool) = u.IsStaff
		*dest[6].(*bool) = u.IsSuperuser
		*dest[7].(*time.Time) = u.CreatedAt
	case 6:
		// GetPrincipalByTokenKey
		p := r.principal
		*dest[0].(*int) = p.UserID
		*dest[1].(*string) = p.Email
		*dest[2].(*bool) = p.IsActive
		*dest[3].(*bool) = p.IsStaff
		*dest[4].(*bool) = p.IsSuperuser
		*dest[5].(*string) = p.TokenKey
	case 3:
		// GetOrCreateAuthToken
		*dest[0].(*string) = r.token.Key
		*dest[1].(*int) = r.token.UserID
		*dest[2].(*time.Time) = r.token.CreatedAt
	case 2:
		// CreateUser: id, created_at
		*dest[0].(*int) = r.user.ID
		*dest[1].(*time.Time) = r.user.CreatedAt
	case 1:
		// attribute Create: id
		*dest[0].(*int) = r.id
	default:
		panic("fakeRow.Scan: unexpected number of dest")
	}
	return nil
}

// fakeRows 實作 pgx.Rows，用於模擬多筆 attribute 掃描。
type fakeRows struct {
	data    []model.Attribute
	idx     int
	scanErr error
	err     error
	closed  bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	a := r.data[r.idx]
	r.idx++
	*dest[0].(*int) = a.ID
	*dest[1].(*int) = a.UserID
	*dest[2].(*string) = a.Name
	return nil
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

var uniqueErr = &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
