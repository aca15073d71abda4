package entities

import "time"

const (
	TelemetryCategoryCloudAdmin      = "cloud_admin"
	TelemetryCategoryCloudPurchasing = "cloud_purchasing"

	TelemetryEventCompletePaymentSuccess = "complete_payment_success"
	TelemetryEventPageviewPaymentSuccess = "pageview_payment_success"
	TelemetryEventPageviewPaymentFailed  = "pageview_payment_failed"
)

type TelemetryEvent struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Event     string    `json:"event"`
	CreatedAt time.Time `json:"created_at"`
}
