package interfaces

import (
	"context"

	"cloud_checkout/internal/domain/entities"
)

//go:generate mockgen -source=flow_repository_interface.go -destination=mocks/flow_repository_mock.go -package=mock_interfaces

// IFlowRepository keeps the last known snapshot of every checkout flow so a
// flow can still be reported after it is evicted from memory.
type IFlowRepository interface {
	Save(ctx context.Context, s entities.FlowSnapshot) error
	GetByID(ctx context.Context, id string) (entities.FlowSnapshot, error)
}
