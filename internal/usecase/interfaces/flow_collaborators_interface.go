package interfaces

import (
	"context"

	"cloud_checkout/internal/domain/entities"
)

//go:generate mockgen -source=flow_collaborators_interface.go -destination=mocks/flow_collaborators_mock.go -package=mock_interfaces

// IPaymentMethodRegistrar registers a card with the payment provider.
// accepted is true only when the provider approved the card.
type IPaymentMethodRegistrar interface {
	AddPaymentMethod(ctx context.Context, cardToken string, details entities.BillingDetails, devMode bool) (accepted bool, err error)
}

// ISubscriptionService subscribes the workspace to a catalog product.
// Only (true, nil) counts as a successful subscription.
type ISubscriptionService interface {
	Subscribe(ctx context.Context, productID string) (bool, error)
}

// ITelemetryClient records analytics events. Record must not block.
type ITelemetryClient interface {
	Record(event, category string)
}

// INavigationHost receives page transition requests from a flow.
type INavigationHost interface {
	Navigate(path string)
	Close()
	ClearTrialUpgrade()
}
