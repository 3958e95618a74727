package domain

import "time"

// Customer models a storefront account.
type Customer struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
