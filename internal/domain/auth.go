package domain

import "time"

// Audience differentiates staff vs customer tokens. The audience is fixed at
// issuance and must match the guard that consumes the token.
type Audience string

const (
	AudienceStaff    Audience = "STAFF"
	AudienceCustomer Audience = "CUSTOMER"
)

// StaffRole enumerates internal operator roles.
type StaffRole string

const (
	StaffRoleAdmin StaffRole = "ADMIN"
	StaffRoleStaff StaffRole = "STAFF"
)

// Token represents issued authentication token metadata.
type Token struct {
	SubjectID string
	Audience  Audience
	Role      *StaffRole
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Session is a persisted, explicitly revocable record backing a customer
// token, independent of the token's embedded expiry. Deleting the row revokes
// the token even if its embedded expiry has not elapsed.
type Session struct {
	ID         string
	CustomerID string
	Token      string
	CreatedAt  time.Time
	ExpiresAt  time.Time
}
