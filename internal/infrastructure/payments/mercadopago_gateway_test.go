package payments

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	_, err := NewMercadoPagoGateway("", false)
	assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)

	g, err := NewMercadoPagoGateway("", true)
	require.NoError(t, err)
	assert.True(t, g.mockMode)

	g, err = NewMercadoPagoGateway("TEST-123", false)
	require.NoError(t, err)
	assert.NotNil(t, g.client)
}

func TestMercadoPagoGateway_Mock(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true)
	require.NoError(t, err)

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"token":"secret","external_reference":"ada@example.com"}`))
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, "approved", status)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, id, body["id"])
	assert.Equal(t, "ada@example.com", body["external_reference"])
	assert.NotContains(t, body, "token")
	assert.NotEmpty(t, body["date_approved"])

	_, status, _, err = g.CreatePayment(context.Background(), json.RawMessage(`not-json`))
	require.NoError(t, err)
	assert.Equal(t, "approved", status)
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)

	_, _, _, err = (&MercadoPagoGateway{}).CreatePayment(context.Background(), json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
}
