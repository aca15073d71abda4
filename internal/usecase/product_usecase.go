package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud_checkout/internal/domain/entities"
	"cloud_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductAlreadyExists = errors.New("product already exists")
	ErrInvalidProductID     = errors.New("invalid product id")
	ErrInvalidProductSKU    = errors.New("invalid product sku")
	ErrInvalidProductName   = errors.New("invalid product name")
	ErrInvalidProductPrice  = errors.New("invalid product price")
)

//go:generate mockgen -source=product_usecase.go -destination=../adapter/http/handlers/mocks/product_usecase_mock.go -package=mocks

// IProductUseCase exposes the plan catalog used by checkout flows.
//
// A SKU identifies a plan across price changes, so only one product may exist
// per SKU.
type IProductUseCase interface {
	CreateProduct(ctx context.Context, sku, name string, price float64) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	GetBySKU(ctx context.Context, sku string) (entities.Product, error)
	UpdatePrice(ctx context.Context, id string, newPrice float64) (entities.Product, error)
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func (u *ProductUseCase) CreateProduct(ctx context.Context, sku, name string, price float64) (entities.Product, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return entities.Product{}, ErrInvalidProductSKU
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Product{}, ErrInvalidProductName
	}
	if price < 0 {
		return entities.Product{}, ErrInvalidProductPrice
	}

	if existing, err := u.repo.GetBySKU(ctx, sku); err != nil {
		return entities.Product{}, err
	} else if existing.ID != "" {
		return entities.Product{}, ErrProductAlreadyExists
	}

	now := time.Now().UTC()
	p := entities.Product{
		ID:        uuid.NewString(),
		SKU:       sku,
		Name:      name,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProductUseCase) UpdatePrice(ctx context.Context, id string, newPrice float64) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	if newPrice < 0 {
		return entities.Product{}, ErrInvalidProductPrice
	}

	updated, err := u.repo.UpdatePriceByID(ctx, id, newPrice)
	if err != nil {
		return entities.Product{}, err
	}
	if updated.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return updated, nil
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) GetBySKU(ctx context.Context, sku string) (entities.Product, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return entities.Product{}, ErrInvalidProductSKU
	}

	p, err := u.repo.GetBySKU(ctx, sku)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}
