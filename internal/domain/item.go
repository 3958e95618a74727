package domain

import "time"

// Item is a stocked product tracked by the inventory.
type Item struct {
	ID         string
	SKU        string
	Name       string
	CategoryID *string
	Location   string
	Quantity   int
	Unit       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
