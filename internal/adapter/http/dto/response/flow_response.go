package response

import (
	"fmt"
	"time"

	"cloud_checkout/internal/domain/entities"
)

const (
	MessageVariantProcessing      = "processing"
	MessageVariantFailed          = "failed"
	MessageVariantSuccessProrated = "success_prorated"
	MessageVariantSuccess         = "success"

	billingDateLayout = "January 2, 2006"
)

// FlowMessage is the copy of the screen the host renders for a flow.
type FlowMessage struct {
	Variant      string `json:"variant"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle,omitempty"`
	Date         string `json:"date,omitempty"`
	ButtonText   string `json:"button_text,omitempty"`
	LinkText     string `json:"link_text,omitempty"`
	LinkURL      string `json:"link_url,omitempty"`
	ShowProgress bool   `json:"show_progress"`
}

type NavigationResponse struct {
	Action string    `json:"action"`
	Path   string    `json:"path,omitempty"`
	At     time.Time `json:"at"`
}

type FlowResponse struct {
	FlowID    string    `json:"flow_id"`
	State     string    `json:"state"`
	Progress  int       `json:"progress"`
	Attempt   int       `json:"attempt"`
	Failure   string    `json:"failure,omitempty"`
	ProductID string    `json:"product_id,omitempty"`
	StartedAt time.Time `json:"started_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Message     FlowMessage          `json:"message"`
	Navigations []NavigationResponse `json:"navigations,omitempty"`
}

func FromFlowView(v entities.FlowView) FlowResponse {
	s := v.Snapshot
	out := FlowResponse{
		FlowID:    s.ID,
		State:     string(s.State),
		Progress:  s.Progress,
		Attempt:   s.Attempt,
		Failure:   s.Failure,
		ProductID: s.ProductID,
		StartedAt: s.StartedAt,
		UpdatedAt: s.UpdatedAt,
		Message:   MessageFor(v),
	}
	for _, n := range v.Navigations {
		out.Navigations = append(out.Navigations, NavigationResponse{Action: string(n.Action), Path: n.Path, At: n.At})
	}
	return out
}

// MessageFor picks the screen copy for the flow's current state.
func MessageFor(v entities.FlowView) FlowMessage {
	switch v.Snapshot.State {
	case entities.FlowStateFailed:
		return FlowMessage{
			Variant:    MessageVariantFailed,
			Title:      "Sorry, the payment verification failed",
			Subtitle:   "Please check your payment information and try again, or contact support.",
			ButtonText: "Go back and try again",
			LinkText:   "Contact Support",
			LinkURL:    v.ContactSupportLink,
		}
	case entities.FlowStateSucceeded:
		selected := productName(v.SelectedProduct)
		date := ""
		if !v.NextBillingDate.IsZero() {
			date = v.NextBillingDate.Format(billingDateLayout)
		}
		if v.IsProratedPayment {
			return FlowMessage{
				Variant: MessageVariantSuccessProrated,
				Title:   fmt.Sprintf("You are now subscribed to %s", selected),
				Subtitle: fmt.Sprintf(
					"Thank you for upgrading to %s. Check your workspace in a few minutes to access all the plan's features. "+
						"You'll be charged a prorated amount for your %s plan and %s plan based on the number of days left in the billing cycle and number of users you have.",
					selected, productName(v.CurrentProduct), selected,
				),
				Date:       date,
				ButtonText: "Return to Workspace",
			}
		}
		return FlowMessage{
			Variant: MessageVariantSuccess,
			Title:   fmt.Sprintf("You are now upgraded to %s", selected),
			Subtitle: fmt.Sprintf(
				"Starting from %s, you will be billed for the %s plan. You can change your plan whenever you like and we will pro-rate the charges.",
				date, selected,
			),
			ButtonText: "Return to Workspace",
			LinkText:   "View Billing",
		}
	default:
		return FlowMessage{
			Variant:      MessageVariantProcessing,
			Title:        "Verifying your payment information",
			ShowProgress: true,
		}
	}
}

func productName(p *entities.Product) string {
	if p == nil {
		return ""
	}
	return p.Name
}
