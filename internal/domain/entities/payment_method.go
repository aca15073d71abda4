package entities

import (
	"encoding/json"
	"time"
)

// PaymentMethodStatus is the verification outcome reported by the provider.
type PaymentMethodStatus string

const (
	PaymentMethodStatusPendente PaymentMethodStatus = "pendente"
	PaymentMethodStatusAprovado PaymentMethodStatus = "aprovado"
	PaymentMethodStatusNegado   PaymentMethodStatus = "negado"
)

// PaymentMethod is a card registered through the payment provider.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id of the verification charge)
//   - GSI1 (customer_email-index): customer_email
//
// ProviderPayloadRaw keeps the provider response for traceability, and
// ProviderPayload is its parsed form.
type PaymentMethod struct {
	ID            string              `json:"id"`
	CustomerEmail string              `json:"customer_email"`
	Brand         string              `json:"brand"`
	Date          time.Time           `json:"date"`
	Status        PaymentMethodStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

// Accepted reports whether the card may be used for billing.
func (p PaymentMethod) Accepted() bool {
	return p.Status == PaymentMethodStatusAprovado
}
