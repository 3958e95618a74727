package dto

// ItemRequest payload for creating or updating items.
type ItemRequest struct {
	SKU        string  `json:"sku"`
	Name       string  `json:"name"`
	CategoryID *string `json:"category_id"`
	Location   string  `json:"location"`
	Quantity   int     `json:"quantity"`
	Unit       string  `json:"unit"`
}

// StockAdjustRequest payload for relative stock movements.
type StockAdjustRequest struct {
	Delta int `json:"delta"`
}

// CategoryRequest payload for creating or updating categories.
type CategoryRequest struct {
	Name string `json:"name"`
}
