package request

import (
	"strings"

	"cloud_checkout/internal/domain/entities"
)

type BillingDetailsRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email" binding:"required"`
	AddressLine1    string `json:"address_line1"`
	AddressLine2    string `json:"address_line2"`
	City            string `json:"city"`
	State           string `json:"state"`
	Country         string `json:"country"`
	PostalCode      string `json:"postal_code"`
	PaymentMethodID string `json:"payment_method_id"`
}

// StartCheckoutRequest is what the purchase form submits.
//
// `card_token` is produced by the provider's client SDK; the raw card number
// never reaches the service.
type StartCheckoutRequest struct {
	CardToken      string                `json:"card_token"`
	BillingDetails BillingDetailsRequest `json:"billing_details" binding:"required"`
	DevMode        bool                  `json:"dev_mode"`

	SelectedProductID string `json:"selected_product_id"`
	CurrentProductID  string `json:"current_product_id"`
	Subscribe         bool   `json:"subscribe"`

	IsProratedPayment  bool `json:"is_prorated_payment"`
	IsUpgradeFromTrial bool `json:"is_upgrade_from_trial"`
}

func (r StartCheckoutRequest) ToEntity() entities.CheckoutRequest {
	b := r.BillingDetails
	return entities.CheckoutRequest{
		CardToken: strings.TrimSpace(r.CardToken),
		BillingDetails: entities.BillingDetails{
			Name:            strings.TrimSpace(b.Name),
			Email:           strings.TrimSpace(b.Email),
			AddressLine1:    strings.TrimSpace(b.AddressLine1),
			AddressLine2:    strings.TrimSpace(b.AddressLine2),
			City:            strings.TrimSpace(b.City),
			State:           strings.TrimSpace(b.State),
			Country:         strings.TrimSpace(b.Country),
			PostalCode:      strings.TrimSpace(b.PostalCode),
			PaymentMethodID: strings.TrimSpace(b.PaymentMethodID),
		},
		DevMode:            r.DevMode,
		SelectedProductID:  strings.TrimSpace(r.SelectedProductID),
		CurrentProductID:   strings.TrimSpace(r.CurrentProductID),
		Subscribe:          r.Subscribe,
		IsProratedPayment:  r.IsProratedPayment,
		IsUpgradeFromTrial: r.IsUpgradeFromTrial,
	}
}
