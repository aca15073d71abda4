package interfaces

import (
	"context"

	"cloud_checkout/internal/domain/entities"
)

//go:generate mockgen -source=payment_method_repository_interface.go -destination=mocks/payment_method_repository_mock.go -package=mock_interfaces

// IPaymentMethodRepository abstracts DynamoDB persistence for PaymentMethod.

type IPaymentMethodRepository interface {
	Create(ctx context.Context, p entities.PaymentMethod) (entities.PaymentMethod, error)
	GetByID(ctx context.Context, id string) (entities.PaymentMethod, error)
	ListByCustomerEmail(ctx context.Context, email string) ([]entities.PaymentMethod, error)
}
