package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"cloud_checkout/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing mercado pago access token")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

var log = logrus.WithField("component", "payments")

// MercadoPagoGateway runs card verification charges through Mercado Pago.
// In mock mode it answers every request with an approved payment.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mockMode bool) (*MercadoPagoGateway, error) {
	if mockMode {
		log.Infof("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Errorf("[payment][gateway] missing access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Errorf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Infof("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return mockPayment(requestPayload)
	}

	if g == nil || g.client == nil {
		log.Errorf("[payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Debugf("[payment][gateway] create start payload_len=%d", len(requestPayload))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Warnf("[payment][gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Warnf("[payment][gateway] sdk create failed err=%v", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("[payment][gateway] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	log.Infof("[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func mockPayment(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	log.Debugf("[payment][gateway] mock create start payload_len=%d", len(requestPayload))

	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{}
		}
	}
	delete(resp, "token")

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = now
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("[payment][gateway] mock response marshal failed err=%v", err)
		return "", "", nil, err
	}

	log.Infof("[payment][gateway] mock create success provider_payment_id=%s provider_status=approved", id)
	return id, "approved", b, nil
}
