package interfaces

import (
	"context"

	"cloud_checkout/internal/domain/entities"
)

//go:generate mockgen -source=telemetry_repository_interface.go -destination=mocks/telemetry_repository_mock.go -package=mock_interfaces

type ITelemetryRepository interface {
	Create(ctx context.Context, e entities.TelemetryEvent) error
}
