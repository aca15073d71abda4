package entities

import "time"

// Product is a plan in the cloud catalog that a workspace can subscribe to.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (sku-index): sku
type Product struct {
	ID        string    `json:"id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
