package interfaces

import (
	"context"

	"cloud_checkout/internal/domain/entities"
)

//go:generate mockgen -source=product_repository_interface.go -destination=mocks/product_repository_mock.go -package=mock_interfaces

// IProductRepository abstracts DynamoDB persistence for the product catalog.
//
// Lookups return a zero Product (empty ID) and a nil error when nothing matches.
type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	GetBySKU(ctx context.Context, sku string) (entities.Product, error)
	UpdatePriceByID(ctx context.Context, id string, newPrice float64) (entities.Product, error)
}
