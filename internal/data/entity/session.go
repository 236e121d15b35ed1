package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is an operator login session with explicit expiry. Replaces
// the ambient "admin logged in" flag the UI used to keep client-side.
type Session struct {
	BaseSimple
	OperatorID uuid.UUID  `db:"operator_id"`
	Token      string     `db:"token"`
	UserAgent  string     `db:"user_agent"`
	IPAddress  string     `db:"ip_address"`
	ExpiresAt  time.Time  `db:"expires_at"`
	RevokedAt  *time.Time `db:"revoked_at"`
}
