package domain

import "time"

// User is the domain model for internal staff operating the inventory.
type User struct {
	ID           string
	Name         string
	Username     string
	Email        string
	PasswordHash string
	Role         StaffRole
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
