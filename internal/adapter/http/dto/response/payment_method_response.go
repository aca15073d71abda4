package response

import (
	"time"

	"cloud_checkout/internal/domain/entities"
)

type PaymentMethodResponse struct {
	PaymentMethodID string    `json:"payment_method_id"`
	CustomerEmail   string    `json:"customer_email"`
	Brand           string    `json:"brand"`
	Date            time.Time `json:"date"`
	Status          string    `json:"status"`
	Accepted        bool      `json:"accepted"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPaymentMethod(p entities.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		PaymentMethodID:    p.ID,
		CustomerEmail:      p.CustomerEmail,
		Brand:              p.Brand,
		Date:               p.Date,
		Status:             string(p.Status),
		Accepted:           p.Accepted(),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromPaymentMethods(ps []entities.PaymentMethod) []PaymentMethodResponse {
	out := make([]PaymentMethodResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPaymentMethod(p))
	}
	return out
}
