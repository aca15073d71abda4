package paymentflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud_checkout/internal/domain/entities"
	"cloud_checkout/internal/infrastructure/clock/fake"
	mock_interfaces "cloud_checkout/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var t0 = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

type harness struct {
	clock       *fake.Clock
	gateway     *mock_interfaces.MockIPaymentMethodRegistrar
	subs        *mock_interfaces.MockISubscriptionService
	telemetry   *mock_interfaces.MockITelemetryClient
	nav         *mock_interfaces.MockINavigationHost
	queued      []func()
	transitions []entities.FlowSnapshot
	controller  *Controller
}

// newHarness builds a controller whose collaborator calls are queued until
// the test delivers them with deliver(), so time can pass while a call is in
// flight.
func newHarness(t *testing.T, req entities.CheckoutRequest) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		clock:     fake.NewClock(t0),
		gateway:   mock_interfaces.NewMockIPaymentMethodRegistrar(ctrl),
		subs:      mock_interfaces.NewMockISubscriptionService(ctrl),
		telemetry: mock_interfaces.NewMockITelemetryClient(ctrl),
		nav:       mock_interfaces.NewMockINavigationHost(ctrl),
	}

	c, err := New(Config{
		ID:            "flow-1",
		Request:       req,
		Gateway:       h.gateway,
		Subscriptions: h.subs,
		Telemetry:     h.telemetry,
		Navigation:    h.nav,
		Clock:         h.clock,
		MinProcessing: 5000 * time.Millisecond,
		MaxProgress:   95,
		Go:            func(f func()) { h.queued = append(h.queued, f) },
		OnTransition:  func(s entities.FlowSnapshot) { h.transitions = append(h.transitions, s) },
	})
	require.NoError(t, err)
	h.controller = c
	return h
}

func (h *harness) deliver() {
	q := h.queued
	h.queued = nil
	for _, f := range q {
		f()
	}
}

func (h *harness) acceptCard() {
	h.gateway.EXPECT().AddPaymentMethod(gomock.Any(), "tok-1", gomock.Any(), false).Return(true, nil)
}

func (h *harness) anyTelemetry() {
	h.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).AnyTimes()
}

func (h *harness) states() []entities.FlowState {
	out := make([]entities.FlowState, 0, len(h.transitions))
	for _, s := range h.transitions {
		out = append(out, s.State)
	}
	return out
}

func baseRequest() entities.CheckoutRequest {
	return entities.CheckoutRequest{
		CardToken:         "tok-1",
		BillingDetails:    entities.BillingDetails{Name: "Ada Lovelace", Email: "ada@test.com"},
		SelectedProductID: "prod-pro",
	}
}

func TestNew_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIPaymentMethodRegistrar(ctrl)

	t.Run("missing gateway", func(t *testing.T) {
		_, err := New(Config{})
		assert.Error(t, err)
	})

	t.Run("subscription step without service", func(t *testing.T) {
		_, err := New(Config{Gateway: gateway, Request: entities.CheckoutRequest{Subscribe: true}})
		assert.Error(t, err)
	})

	t.Run("cap must stay below 100", func(t *testing.T) {
		_, err := New(Config{Gateway: gateway, MaxProgress: 100})
		assert.Error(t, err)
	})

	t.Run("defaults derive the tick interval", func(t *testing.T) {
		c, err := New(Config{Gateway: gateway})
		require.NoError(t, err)
		assert.Equal(t, DefaultMinProcessing/DefaultMaxProgress, c.Interval())
		assert.InDelta(t, 52.6, float64(c.Interval())/float64(time.Millisecond), 0.1)
		assert.Equal(t, entities.FlowStateProcessing, c.Snapshot().State)
	})
}

func TestController_ProgressIsMonotonicAndCapped(t *testing.T) {
	h := newHarness(t, baseRequest())
	require.NoError(t, h.controller.Start(context.Background()))

	last := 0
	for i := 0; i < 1000; i++ {
		h.clock.Advance(10 * time.Millisecond)
		snap := h.controller.Snapshot()
		require.GreaterOrEqual(t, snap.Progress, last)
		require.LessOrEqual(t, snap.Progress, 95)
		require.Equal(t, entities.FlowStateProcessing, snap.State)
		last = snap.Progress
	}

	assert.Equal(t, 95, last)
	assert.Zero(t, h.clock.Pending(), "ticker should stop itself at the cap")
}

func TestController_StartTwice(t *testing.T) {
	h := newHarness(t, baseRequest())
	require.NoError(t, h.controller.Start(context.Background()))
	assert.ErrorIs(t, h.controller.Start(context.Background()), ErrAlreadyStarted)
}

func TestController_GatewayFailures(t *testing.T) {
	cases := []struct {
		name  string
		setup func(h *harness)
	}{
		{
			name: "rejected",
			setup: func(h *harness) {
				h.gateway.EXPECT().AddPaymentMethod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
			},
		},
		{
			name: "error",
			setup: func(h *harness) {
				h.gateway.EXPECT().AddPaymentMethod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("provider down"))
			},
		},
		{
			name: "error with accepted flag",
			setup: func(h *harness) {
				h.gateway.EXPECT().AddPaymentMethod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, errors.New("partial"))
			},
		},
		{
			name: "panic",
			setup: func(h *harness) {
				h.gateway.EXPECT().AddPaymentMethod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(context.Context, string, entities.BillingDetails, bool) (bool, error) {
						panic("boom")
					},
				)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, baseRequest())
			tc.setup(h)
			h.telemetry.EXPECT().Record(entities.TelemetryEventPageviewPaymentFailed, entities.TelemetryCategoryCloudPurchasing)

			require.NoError(t, h.controller.Start(context.Background()))
			h.clock.Advance(200 * time.Millisecond)
			before := h.controller.Snapshot().Progress
			require.Greater(t, before, 0)

			h.deliver()

			snap := h.controller.Snapshot()
			assert.Equal(t, entities.FlowStateFailed, snap.State)
			assert.Contains(t, snap.Failure, ErrPaymentRejected.Error())
			assert.Zero(t, h.clock.Pending())

			h.clock.Advance(time.Second)
			assert.Equal(t, before, h.controller.Snapshot().Progress, "no progress after failure")
			assert.Equal(t, []entities.FlowState{entities.FlowStateProcessing, entities.FlowStateFailed}, h.states())
		})
	}
}

func TestController_SucceedsNoEarlierThanMinimumDuration(t *testing.T) {
	h := newHarness(t, baseRequest())
	h.acceptCard()
	gomock.InOrder(
		h.telemetry.EXPECT().Record(entities.TelemetryEventCompletePaymentSuccess, entities.TelemetryCategoryCloudAdmin),
		h.telemetry.EXPECT().Record(entities.TelemetryEventPageviewPaymentSuccess, entities.TelemetryCategoryCloudPurchasing),
	)

	require.NoError(t, h.controller.Start(context.Background()))
	h.clock.Advance(200 * time.Millisecond)
	h.deliver()

	snap := h.controller.Snapshot()
	assert.Equal(t, entities.FlowStateProcessing, snap.State)
	assert.Less(t, snap.Progress, 100)
	assert.Equal(t, 2, h.clock.Pending(), "ticker and completion timer")

	h.clock.Advance(4799 * time.Millisecond)
	snap = h.controller.Snapshot()
	assert.Equal(t, entities.FlowStateProcessing, snap.State)
	assert.LessOrEqual(t, snap.Progress, 95)

	h.clock.Advance(time.Millisecond)
	snap = h.controller.Snapshot()
	assert.Equal(t, entities.FlowStateSucceeded, snap.State)
	assert.Equal(t, 100, snap.Progress)
	assert.Equal(t, t0.Add(5000*time.Millisecond), snap.UpdatedAt)
	assert.Zero(t, h.clock.Pending())
}

func TestController_SucceedsImmediatelyAfterMinimumDuration(t *testing.T) {
	h := newHarness(t, baseRequest())
	h.acceptCard()
	h.anyTelemetry()

	require.NoError(t, h.controller.Start(context.Background()))
	h.clock.Advance(6 * time.Second)
	require.Equal(t, 95, h.controller.Snapshot().Progress)

	h.deliver()

	snap := h.controller.Snapshot()
	assert.Equal(t, entities.FlowStateSucceeded, snap.State)
	assert.Equal(t, 100, snap.Progress)
	assert.Equal(t, t0.Add(6*time.Second), snap.UpdatedAt)
	assert.Zero(t, h.clock.Pending())
}

func TestController_SubscriptionStep(t *testing.T) {
	cases := []struct {
		name      string
		ok        bool
		err       error
		wantState entities.FlowState
	}{
		{name: "subscribed", ok: true, wantState: entities.FlowStateSucceeded},
		{name: "not confirmed", ok: false, wantState: entities.FlowStateFailed},
		{name: "error", ok: false, err: errors.New("plan unavailable"), wantState: entities.FlowStateFailed},
		{name: "error despite ok", ok: true, err: errors.New("ambiguous"), wantState: entities.FlowStateFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := baseRequest()
			req.Subscribe = true
			h := newHarness(t, req)
			h.anyTelemetry()
			gomock.InOrder(
				h.gateway.EXPECT().AddPaymentMethod(gomock.Any(), "tok-1", gomock.Any(), false).Return(true, nil),
				h.subs.EXPECT().Subscribe(gomock.Any(), "prod-pro").Return(tc.ok, tc.err),
			)

			require.NoError(t, h.controller.Start(context.Background()))
			h.clock.Advance(300 * time.Millisecond)
			h.deliver()
			h.clock.Advance(5 * time.Second)

			snap := h.controller.Snapshot()
			assert.Equal(t, tc.wantState, snap.State)
			if tc.wantState == entities.FlowStateFailed {
				assert.Contains(t, snap.Failure, ErrSubscriptionRejected.Error())
			}
			assert.Zero(t, h.clock.Pending())
		})
	}
}

func TestController_NoSubscriptionWhenNotRequested(t *testing.T) {
	h := newHarness(t, baseRequest())
	h.acceptCard()
	h.anyTelemetry()
	// h.subs has no expectations: any Subscribe call fails the test.

	require.NoError(t, h.controller.Start(context.Background()))
	h.deliver()
	h.clock.Advance(5 * time.Second)

	assert.Equal(t, entities.FlowStateSucceeded, h.controller.Snapshot().State)
}

func TestController_Retry(t *testing.T) {
	h := newHarness(t, baseRequest())
	h.anyTelemetry()
	gomock.InOrder(
		h.gateway.EXPECT().AddPaymentMethod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil),
		h.gateway.EXPECT().AddPaymentMethod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil),
	)

	require.NoError(t, h.controller.Start(context.Background()))
	h.clock.Advance(time.Second)
	h.deliver()
	require.Equal(t, entities.FlowStateFailed, h.controller.Snapshot().State)

	require.NoError(t, h.controller.Retry())

	snap := h.controller.Snapshot()
	assert.Equal(t, entities.FlowStateProcessing, snap.State)
	assert.Equal(t, 0, snap.Progress)
	assert.Equal(t, 2, snap.Attempt)
	assert.Empty(t, snap.Failure)
	assert.Equal(t, 1, h.clock.Pending(), "exactly one ticker after retry")

	h.clock.Advance(h.controller.Interval())
	assert.Equal(t, 1, h.controller.Snapshot().Progress, "a duplicate ticker would double the pace")

	h.deliver()
	h.clock.Advance(5 * time.Second)

	snap = h.controller.Snapshot()
	assert.Equal(t, entities.FlowStateSucceeded, snap.State)
	assert.Equal(t, t0.Add(time.Second+5000*time.Millisecond), snap.UpdatedAt, "minimum duration restarts with the attempt")
	assert.Equal(t, []entities.FlowState{
		entities.FlowStateProcessing,
		entities.FlowStateFailed,
		entities.FlowStateProcessing,
		entities.FlowStateSucceeded,
	}, h.states())
}

func TestController_RetryOnlyFromFailed(t *testing.T) {
	h := newHarness(t, baseRequest())
	h.acceptCard()
	h.anyTelemetry()

	require.NoError(t, h.controller.Start(context.Background()))
	assert.ErrorIs(t, h.controller.Retry(), ErrInvalidTransition)

	h.deliver()
	h.clock.Advance(5 * time.Second)
	require.Equal(t, entities.FlowStateSucceeded, h.controller.Snapshot().State)
	assert.ErrorIs(t, h.controller.Retry(), ErrInvalidTransition)
	assert.Equal(t, entities.FlowStateSucceeded, h.controller.Snapshot().State)
}

func TestController_Teardown(t *testing.T) {
	t.Run("while processing drops the late result", func(t *testing.T) {
		h := newHarness(t, baseRequest())
		h.gateway.EXPECT().AddPaymentMethod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ string, _ entities.BillingDetails, _ bool) (bool, error) {
				assert.Error(t, ctx.Err(), "call context is cancelled by teardown")
				return true, nil
			},
		)

		require.NoError(t, h.controller.Start(context.Background()))
		h.clock.Advance(100 * time.Millisecond)
		h.controller.Teardown()
		assert.Zero(t, h.clock.Pending())

		h.deliver()
		h.clock.Advance(10 * time.Second)

		assert.Equal(t, entities.FlowStateProcessing, h.controller.Snapshot().State)
		assert.Zero(t, h.clock.Pending())
		assert.Len(t, h.transitions, 1)
		assert.ErrorIs(t, h.controller.Retry(), ErrFlowTornDown)
	})

	t.Run("while waiting for the minimum duration", func(t *testing.T) {
		h := newHarness(t, baseRequest())
		h.acceptCard()

		require.NoError(t, h.controller.Start(context.Background()))
		h.deliver()
		require.Equal(t, 2, h.clock.Pending())

		h.controller.Teardown()
		assert.Zero(t, h.clock.Pending())
		h.clock.Advance(10 * time.Second)
		assert.Equal(t, entities.FlowStateProcessing, h.controller.Snapshot().State)
	})

	t.Run("after success", func(t *testing.T) {
		h := newHarness(t, baseRequest())
		h.acceptCard()
		h.anyTelemetry()

		require.NoError(t, h.controller.Start(context.Background()))
		h.deliver()
		h.clock.Advance(5 * time.Second)

		h.controller.Teardown()
		assert.Zero(t, h.clock.Pending())
		assert.ErrorIs(t, h.controller.Close(), ErrFlowTornDown)
	})

	t.Run("after failure and idempotent", func(t *testing.T) {
		h := newHarness(t, baseRequest())
		h.gateway.EXPECT().AddPaymentMethod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		h.anyTelemetry()

		require.NoError(t, h.controller.Start(context.Background()))
		h.deliver()

		h.controller.Teardown()
		h.controller.Teardown()
		assert.Zero(t, h.clock.Pending())
	})

	t.Run("before start", func(t *testing.T) {
		h := newHarness(t, baseRequest())
		h.controller.Teardown()
		assert.ErrorIs(t, h.controller.Start(context.Background()), ErrFlowTornDown)
		assert.Zero(t, h.clock.Pending())
	})
}

func TestController_EndToEndTiming(t *testing.T) {
	h := newHarness(t, baseRequest())
	h.acceptCard()
	h.anyTelemetry()

	require.NoError(t, h.controller.Start(context.Background()))
	h.clock.Advance(100 * time.Millisecond)
	h.deliver()

	var succeededAt time.Time
	last := 0
	for h.clock.Now().Before(t0.Add(6 * time.Second)) {
		h.clock.Advance(time.Millisecond)
		snap := h.controller.Snapshot()
		if snap.State == entities.FlowStateSucceeded {
			succeededAt = h.clock.Now()
			assert.Equal(t, 100, snap.Progress)
			break
		}
		require.GreaterOrEqual(t, snap.Progress, last)
		require.LessOrEqual(t, snap.Progress, 95)
		last = snap.Progress
	}

	assert.Equal(t, t0.Add(5000*time.Millisecond), succeededAt)
	assert.GreaterOrEqual(t, last, 94, "progress climbs close to the cap before success")
	assert.Zero(t, h.clock.Pending())
}

func TestController_SuccessNavigation(t *testing.T) {
	succeed := func(t *testing.T, req entities.CheckoutRequest) *harness {
		h := newHarness(t, req)
		h.acceptCard()
		h.anyTelemetry()
		require.NoError(t, h.controller.Start(context.Background()))
		h.deliver()
		h.clock.Advance(5 * time.Second)
		require.Equal(t, entities.FlowStateSucceeded, h.controller.Snapshot().State)
		return h
	}

	t.Run("close", func(t *testing.T) {
		h := succeed(t, baseRequest())
		h.nav.EXPECT().Close()
		assert.NoError(t, h.controller.Close())
	})

	t.Run("close after trial upgrade clears the flag first", func(t *testing.T) {
		req := baseRequest()
		req.IsUpgradeFromTrial = true
		h := succeed(t, req)
		gomock.InOrder(
			h.nav.EXPECT().ClearTrialUpgrade(),
			h.nav.EXPECT().Close(),
		)
		assert.NoError(t, h.controller.Close())
	})

	t.Run("view billing", func(t *testing.T) {
		h := succeed(t, baseRequest())
		gomock.InOrder(
			h.nav.EXPECT().Close(),
			h.nav.EXPECT().Navigate(BillingSubscriptionPath),
		)
		assert.NoError(t, h.controller.ViewBilling())
	})

	t.Run("prorated close keeps the trial flag", func(t *testing.T) {
		req := baseRequest()
		req.IsUpgradeFromTrial = true
		req.IsProratedPayment = true
		h := succeed(t, req)
		h.nav.EXPECT().ClearTrialUpgrade().Times(0)
		h.nav.EXPECT().Close()
		assert.NoError(t, h.controller.Close())
	})

	t.Run("prorated success has no billing link", func(t *testing.T) {
		req := baseRequest()
		req.IsProratedPayment = true
		h := succeed(t, req)
		assert.ErrorIs(t, h.controller.ViewBilling(), ErrInvalidTransition)
	})

	t.Run("not available while processing", func(t *testing.T) {
		h := newHarness(t, baseRequest())
		require.NoError(t, h.controller.Start(context.Background()))
		assert.ErrorIs(t, h.controller.Close(), ErrInvalidTransition)
		assert.ErrorIs(t, h.controller.ViewBilling(), ErrInvalidTransition)
	})
}

func TestController_TeardownSkipsSubscription(t *testing.T) {
	req := baseRequest()
	req.Subscribe = true
	h := newHarness(t, req)
	h.acceptCard()

	require.NoError(t, h.controller.Start(context.Background()))
	h.controller.Teardown()
	h.deliver()

	assert.Equal(t, entities.FlowStateProcessing, h.controller.Snapshot().State)
	assert.Len(t, h.transitions, 1)
}
