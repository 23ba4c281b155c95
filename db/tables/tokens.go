package tables

import (
	"time"
)

// TokenTable represents the tokens table
type TokenTable struct {
	ID        int        `db:"id,omitempty"`
	UserID    string     `db:"user_id"`
	Token     string     `db:"token"`
	Scopes    StringList `db:"scopes"`
	CreatedAt time.Time  `db:"created_at"`
	ExpiresAt time.Time  `db:"expires_at"`
}
