package model

import "time"

// AuthToken is the single server-side credential record of a user. Access
// tokens carry Key as their jti and stop working once the row is gone.
type AuthToken struct {
	Key       string    `db:"key" json:"key"`
	UserID    int       `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
