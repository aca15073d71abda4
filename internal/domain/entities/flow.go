package entities

import "time"

// FlowState is the lifecycle of a checkout flow.
//
// Transitions:
//   - processing -> succeeded (terminal)
//   - processing -> failed
//   - failed -> processing (explicit retry only)
type FlowState string

const (
	FlowStateProcessing FlowState = "processing"
	FlowStateSucceeded  FlowState = "succeeded"
	FlowStateFailed     FlowState = "failed"
)

// Terminal reports whether no further automatic transition can happen.
func (s FlowState) Terminal() bool {
	return s == FlowStateSucceeded || s == FlowStateFailed
}

// CheckoutRequest carries everything the purchase form submits to start a flow.
type CheckoutRequest struct {
	// CardToken is the tokenized card credential produced by the provider's
	// client-side SDK.
	CardToken      string
	BillingDetails BillingDetails
	DevMode        bool

	SelectedProductID string
	CurrentProductID  string
	// Subscribe adds the plan subscription step after the card is accepted.
	Subscribe bool

	IsProratedPayment  bool
	IsUpgradeFromTrial bool
}

// FlowSnapshot is a point-in-time copy of a flow's state machine.
//
// Storage model (DynamoDB):
//   - PK: id
type FlowSnapshot struct {
	ID        string    `json:"id"`
	State     FlowState `json:"state"`
	Progress  int       `json:"progress"`
	Attempt   int       `json:"attempt"`
	Failure   string    `json:"failure,omitempty"`
	ProductID string    `json:"product_id,omitempty"`
	StartedAt time.Time `json:"started_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Screen inputs, kept so a stored flow renders the same success page.
	CurrentProductID   string `json:"current_product_id,omitempty"`
	IsProratedPayment  bool   `json:"is_prorated_payment,omitempty"`
	IsUpgradeFromTrial bool   `json:"is_upgrade_from_trial,omitempty"`
}

type NavigationAction string

const (
	NavigationActionNavigate          NavigationAction = "navigate"
	NavigationActionClose             NavigationAction = "close"
	NavigationActionClearTrialUpgrade NavigationAction = "clear_trial_upgrade"
)

// Navigation is a request from the flow to the host UI.
type Navigation struct {
	Action NavigationAction `json:"action"`
	Path   string           `json:"path,omitempty"`
	At     time.Time        `json:"at"`
}

// FlowView is what the host UI needs to render the current flow screen.
type FlowView struct {
	Snapshot FlowSnapshot

	SelectedProduct    *Product
	CurrentProduct     *Product
	IsProratedPayment  bool
	IsUpgradeFromTrial bool
	ContactSupportLink string
	NextBillingDate    time.Time

	Navigations []Navigation
}
