package entity

// Operator is an administrative account allowed to drive booking
// transitions (confirm, check-in/out, cancellation and refund approval).
type Operator struct {
	Base
	Email        string `db:"email"`
	Name         string `db:"name"`
	PasswordHash string `db:"password_hash"`
}
