package response

import (
	"time"

	"cloud_checkout/internal/domain/entities"
)

type ProductResponse struct {
	ProductID string    `json:"product_id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ProductID: p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
