package entities

import "time"

type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
)

// Subscription binds the workspace to a catalog product.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (product_id-index): product_id
type Subscription struct {
	ID              string             `json:"id"`
	ProductID       string             `json:"product_id"`
	Status          SubscriptionStatus `json:"status"`
	StartedAt       time.Time          `json:"started_at"`
	NextBillingDate time.Time          `json:"next_billing_date"`
}

// NextBillingDate is the first day of the month following t, in UTC.
func NextBillingDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC)
}
