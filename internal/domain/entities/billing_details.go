package entities

import "strings"

// BillingDetails is the cardholder information collected by the purchase form.
type BillingDetails struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	AddressLine1    string `json:"address_line1"`
	AddressLine2    string `json:"address_line2,omitempty"`
	City            string `json:"city"`
	State           string `json:"state"`
	Country         string `json:"country"`
	PostalCode      string `json:"postal_code"`
	PaymentMethodID string `json:"payment_method_id"`
}

// FirstName and LastName split Name on the first space.
func (b BillingDetails) FirstName() string {
	first, _, _ := strings.Cut(strings.TrimSpace(b.Name), " ")
	return first
}

func (b BillingDetails) LastName() string {
	_, last, _ := strings.Cut(strings.TrimSpace(b.Name), " ")
	return strings.TrimSpace(last)
}
