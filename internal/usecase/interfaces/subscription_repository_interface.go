package interfaces

import (
	"context"

	"cloud_checkout/internal/domain/entities"
)

//go:generate mockgen -source=subscription_repository_interface.go -destination=mocks/subscription_repository_mock.go -package=mock_interfaces

type ISubscriptionRepository interface {
	Create(ctx context.Context, s entities.Subscription) (entities.Subscription, error)
	ListByProductID(ctx context.Context, productID string) ([]entities.Subscription, error)
}
