package events

import (
	"time"

	"github.com/spec-kit/inventory-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStaffLogin         EventType = "staff_login"
	EventStaffLogout        EventType = "staff_logout"
	EventCustomerRegistered EventType = "customer_registered"
	EventCustomerLogin      EventType = "customer_login"
	EventSessionRevoked     EventType = "session_revoked"
	EventStockAdjusted      EventType = "stock_adjusted"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Audience  domain.Audience `json:"audience"`
	SubjectID string          `json:"subject_id"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// StaffLoginPayload payload.
type StaffLoginPayload struct {
	Username string           `json:"username"`
	Role     domain.StaffRole `json:"role"`
}

// CustomerRegisteredPayload payload.
type CustomerRegisteredPayload struct {
	Email string `json:"email"`
}

// SessionRevokedPayload payload.
type SessionRevokedPayload struct {
	Audience domain.Audience `json:"audience"`
}

// StockAdjustedPayload payload.
type StockAdjustedPayload struct {
	ItemID   string `json:"item_id"`
	SKU      string `json:"sku"`
	Delta    int    `json:"delta"`
	Quantity int    `json:"quantity"`
}
