package response

import (
	"strings"
	"testing"
	"time"

	"cloud_checkout/internal/domain/entities"
)

func TestFromFlowView(t *testing.T) {
	now := time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC)
	v := entities.FlowView{
		Snapshot: entities.FlowSnapshot{ID: "flow-1", State: entities.FlowStateProcessing, Progress: 40, Attempt: 1, StartedAt: now, UpdatedAt: now},
		Navigations: []entities.Navigation{
			{Action: entities.NavigationActionNavigate, Path: "/admin_console/billing/subscription", At: now},
		},
	}

	res := FromFlowView(v)
	if res.FlowID != "flow-1" || res.State != "processing" || res.Progress != 40 || res.Attempt != 1 {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.Message.Variant != MessageVariantProcessing || !res.Message.ShowProgress {
		t.Fatalf("unexpected message: %+v", res.Message)
	}
	if len(res.Navigations) != 1 || res.Navigations[0].Action != "navigate" || res.Navigations[0].Path == "" {
		t.Fatalf("unexpected navigations: %+v", res.Navigations)
	}
}

func TestMessageFor(t *testing.T) {
	selected := &entities.Product{Name: "Professional"}
	current := &entities.Product{Name: "Starter"}
	nextBilling := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Run("failed", func(t *testing.T) {
		m := MessageFor(entities.FlowView{
			Snapshot:           entities.FlowSnapshot{State: entities.FlowStateFailed},
			ContactSupportLink: "https://support.test/new",
		})
		if m.Variant != MessageVariantFailed || m.LinkURL != "https://support.test/new" || m.ButtonText == "" || m.ShowProgress {
			t.Fatalf("unexpected message: %+v", m)
		}
	})

	t.Run("success prorated", func(t *testing.T) {
		m := MessageFor(entities.FlowView{
			Snapshot:          entities.FlowSnapshot{State: entities.FlowStateSucceeded},
			SelectedProduct:   selected,
			CurrentProduct:    current,
			IsProratedPayment: true,
			NextBillingDate:   nextBilling,
		})
		if m.Variant != MessageVariantSuccessProrated || m.Title != "You are now subscribed to Professional" {
			t.Fatalf("unexpected message: %+v", m)
		}
		if !strings.Contains(m.Subtitle, "Starter plan and Professional plan") {
			t.Fatalf("subtitle should name both plans: %q", m.Subtitle)
		}
		if m.Date != "July 1, 2024" || m.LinkText != "" {
			t.Fatalf("unexpected message: %+v", m)
		}
	})

	t.Run("success standard", func(t *testing.T) {
		m := MessageFor(entities.FlowView{
			Snapshot:        entities.FlowSnapshot{State: entities.FlowStateSucceeded},
			SelectedProduct: selected,
			NextBillingDate: nextBilling,
		})
		if m.Variant != MessageVariantSuccess || m.Title != "You are now upgraded to Professional" {
			t.Fatalf("unexpected message: %+v", m)
		}
		if !strings.HasPrefix(m.Subtitle, "Starting from July 1, 2024, you will be billed for the Professional plan.") {
			t.Fatalf("unexpected subtitle: %q", m.Subtitle)
		}
		if m.ButtonText != "Return to Workspace" || m.LinkText != "View Billing" {
			t.Fatalf("unexpected actions: %+v", m)
		}
	})
}
