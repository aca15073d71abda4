package request

import (
	"testing"
)

func TestStartCheckoutRequest_ToEntity(t *testing.T) {
	r := StartCheckoutRequest{
		CardToken: " tok ",
		BillingDetails: BillingDetailsRequest{
			Name:            " Ada Lovelace ",
			Email:           " ada@example.com ",
			AddressLine1:    "1 St",
			City:            "London",
			Country:         "GB",
			PostalCode:      "N1",
			PaymentMethodID: " visa ",
		},
		DevMode:            true,
		SelectedProductID:  " prod-pro ",
		CurrentProductID:   "prod-starter",
		Subscribe:          true,
		IsProratedPayment:  true,
		IsUpgradeFromTrial: true,
	}

	e := r.ToEntity()
	if e.CardToken != "tok" {
		t.Fatalf("expected trimmed token, got %q", e.CardToken)
	}
	if e.BillingDetails.Email != "ada@example.com" || e.BillingDetails.PaymentMethodID != "visa" || e.BillingDetails.Name != "Ada Lovelace" {
		t.Fatalf("unexpected billing details: %+v", e.BillingDetails)
	}
	if e.SelectedProductID != "prod-pro" || e.CurrentProductID != "prod-starter" {
		t.Fatalf("unexpected products: %+v", e)
	}
	if !e.DevMode || !e.Subscribe || !e.IsProratedPayment || !e.IsUpgradeFromTrial {
		t.Fatalf("flags not carried over: %+v", e)
	}
}
