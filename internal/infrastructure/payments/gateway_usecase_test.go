package payments_test

import (
	"context"
	"testing"

	"cloud_checkout/internal/domain/entities"
	"cloud_checkout/internal/infrastructure/payments"
	"cloud_checkout/internal/usecase"
	mock_interfaces "cloud_checkout/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMercadoPagoGateway_MockModeBacksPaymentMethodRegistration(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIPaymentMethodRepository(ctrl)

	gateway, err := payments.NewMercadoPagoGateway("", true)
	require.NoError(t, err)
	uc := usecase.NewPaymentMethodUseCase(repo, gateway, usecase.PaymentMethodConfig{})

	var stored entities.PaymentMethod
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.PaymentMethod) (entities.PaymentMethod, error) {
			stored = p
			return p, nil
		},
	)

	details := entities.BillingDetails{Name: "Ada Lovelace", Email: "ada@example.com", PaymentMethodID: "visa"}
	accepted, err := uc.AddPaymentMethod(context.Background(), "tok-secret", details, false)
	require.NoError(t, err)

	assert.True(t, accepted)
	assert.Equal(t, entities.PaymentMethodStatusAprovado, stored.Status)
	assert.Equal(t, stored.ID, stored.ProviderPayload["id"])
	assert.Equal(t, "ada@example.com", stored.ProviderPayload["external_reference"])
	assert.Equal(t, "visa", stored.ProviderPayload["payment_method_id"])
	assert.NotContains(t, stored.ProviderPayload, "token")
}
