package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud_checkout/internal/domain/entities"
	mock_interfaces "cloud_checkout/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProductUseCase_CreateProduct(t *testing.T) {
	t.Run("invalid sku", func(t *testing.T) {
		uc := NewProductUseCase(nil)
		_, err := uc.CreateProduct(context.Background(), "   ", "Professional", 10)
		if !errors.Is(err, ErrInvalidProductSKU) {
			t.Fatalf("expected ErrInvalidProductSKU, got %v", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		uc := NewProductUseCase(nil)
		_, err := uc.CreateProduct(context.Background(), "cloud-professional", " ", 10)
		if !errors.Is(err, ErrInvalidProductName) {
			t.Fatalf("expected ErrInvalidProductName, got %v", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		uc := NewProductUseCase(nil)
		_, err := uc.CreateProduct(context.Background(), "cloud-professional", "Professional", -1)
		if !errors.Is(err, ErrInvalidProductPrice) {
			t.Fatalf("expected ErrInvalidProductPrice, got %v", err)
		}
	})

	t.Run("repo get by sku error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().GetBySKU(gomock.Any(), "cloud-professional").Return(entities.Product{}, errors.New("db"))

		_, err := uc.CreateProduct(context.Background(), "cloud-professional", "Professional", 10)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().GetBySKU(gomock.Any(), "cloud-professional").Return(entities.Product{ID: "existing"}, nil)

		_, err := uc.CreateProduct(context.Background(), "cloud-professional", "Professional", 10)
		if !errors.Is(err, ErrProductAlreadyExists) {
			t.Fatalf("expected ErrProductAlreadyExists, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().GetBySKU(gomock.Any(), "cloud-professional").Return(entities.Product{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Product{})).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.ID == "" || p.SKU != "cloud-professional" || p.Name != "Professional" || p.Price != 10 {
					t.Fatalf("unexpected product: %+v", p)
				}
				if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return p, nil
			},
		)

		res, err := uc.CreateProduct(context.Background(), " cloud-professional ", " Professional ", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestProductUseCase_UpdatePrice(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewProductUseCase(nil)
		_, err := uc.UpdatePrice(context.Background(), " ", 10)
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		uc := NewProductUseCase(nil)
		_, err := uc.UpdatePrice(context.Background(), "id-1", -3)
		if !errors.Is(err, ErrInvalidProductPrice) {
			t.Fatalf("expected ErrInvalidProductPrice, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)
		repo.EXPECT().UpdatePriceByID(gomock.Any(), "id-1", 10.5).Return(entities.Product{}, errors.New("db"))

		_, err := uc.UpdatePrice(context.Background(), "id-1", 10.5)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)
		repo.EXPECT().UpdatePriceByID(gomock.Any(), "id-1", 10.5).Return(entities.Product{}, nil)

		_, err := uc.UpdatePrice(context.Background(), "id-1", 10.5)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)
		expected := entities.Product{ID: "id-1", Price: 10.5, UpdatedAt: time.Now()}
		repo.EXPECT().UpdatePriceByID(gomock.Any(), "id-1", 10.5).Return(expected, nil)

		res, err := uc.UpdatePrice(context.Background(), " id-1 ", 10.5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "id-1" || res.Price != 10.5 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestProductUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid id", func(t *testing.T) {
		uc := NewProductUseCase(nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Product{}, nil)

		_, err := uc.GetByID(context.Background(), "id-1")
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("GetByID success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Product{ID: "id-1"}, nil)

		res, err := uc.GetByID(context.Background(), " id-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "id-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("GetBySKU invalid sku", func(t *testing.T) {
		uc := NewProductUseCase(nil)
		_, err := uc.GetBySKU(context.Background(), " ")
		if !errors.Is(err, ErrInvalidProductSKU) {
			t.Fatalf("expected ErrInvalidProductSKU, got %v", err)
		}
	})

	t.Run("GetBySKU repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)
		repo.EXPECT().GetBySKU(gomock.Any(), "sku-1").Return(entities.Product{}, errors.New("db"))

		_, err := uc.GetBySKU(context.Background(), "sku-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("GetBySKU success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)
		repo.EXPECT().GetBySKU(gomock.Any(), "sku-1").Return(entities.Product{ID: "id-1", SKU: "sku-1"}, nil)

		res, err := uc.GetBySKU(context.Background(), "sku-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.SKU != "sku-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
