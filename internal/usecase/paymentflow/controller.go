// Package paymentflow drives the checkout screen that follows a payment form:
// register the card, optionally subscribe to a plan, then report success or
// failure. The processing screen shows a progress bar that is paced by a
// ticker instead of real network latency, and stays up for at least
// MinProcessing so the UI never flashes straight to the result.
package paymentflow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cloud_checkout/internal/domain/entities"
	"cloud_checkout/internal/infrastructure/clock"
	"cloud_checkout/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

const (
	DefaultMinProcessing = 5000 * time.Millisecond
	DefaultMaxProgress   = 95

	// BillingSubscriptionPath is where "View Billing" sends the user.
	BillingSubscriptionPath = "/admin_console/billing/subscription"
)

var (
	ErrPaymentRejected      = errors.New("payment method rejected")
	ErrSubscriptionRejected = errors.New("subscription rejected")
	ErrInvalidTransition    = errors.New("invalid flow transition")
	ErrFlowTornDown         = errors.New("flow torn down")
	ErrAlreadyStarted       = errors.New("flow already started")
)

var log = logrus.WithField("component", "paymentflow")

// Config is the configuration for a Controller.
type Config struct {
	ID      string
	Request entities.CheckoutRequest

	Gateway interfaces.IPaymentMethodRegistrar
	// Subscriptions is required when Request.Subscribe is set.
	Subscriptions interfaces.ISubscriptionService
	Telemetry     interfaces.ITelemetryClient
	Navigation    interfaces.INavigationHost
	Clock         clock.Clock

	MinProcessing time.Duration
	// MaxProgress is the ceiling the ticker may reach before the real
	// outcome is known. Must be below 100.
	MaxProgress int

	// Go runs the collaborator calls of an attempt. Defaults to a new goroutine.
	Go func(func())
	// OnTransition observes every state change, outside the controller lock.
	OnTransition func(entities.FlowSnapshot)
}

func (c *Config) defaults() error {
	if c.Gateway == nil {
		return errors.New("payment gateway is required")
	}
	if c.Request.Subscribe && c.Subscriptions == nil {
		return errors.New("subscription service is required when subscribing")
	}
	if c.MaxProgress >= 100 {
		return fmt.Errorf("max progress must be below 100, got %d", c.MaxProgress)
	}
	if c.MaxProgress <= 0 {
		c.MaxProgress = DefaultMaxProgress
	}
	if c.MinProcessing <= 0 {
		c.MinProcessing = DefaultMinProcessing
	}
	if c.Telemetry == nil {
		c.Telemetry = noopTelemetry{}
	}
	if c.Navigation == nil {
		c.Navigation = noopNavigation{}
	}
	if c.Clock == nil {
		c.Clock = clock.Real{}
	}
	if c.Go == nil {
		c.Go = func(f func()) { go f() }
	}
	if c.OnTransition == nil {
		c.OnTransition = func(entities.FlowSnapshot) {}
	}
	return nil
}

// Controller is the state machine of one checkout flow.
//
// All transitions happen under mu. Collaborators are called outside of it,
// one after the other. Timer callbacks and collaborator results carry the
// attempt they belong to and are dropped once that attempt is over.
type Controller struct {
	id            string
	req           entities.CheckoutRequest
	gateway       interfaces.IPaymentMethodRegistrar
	subscriptions interfaces.ISubscriptionService
	telemetry     interfaces.ITelemetryClient
	nav           interfaces.INavigationHost
	clock         clock.Clock
	minProcessing time.Duration
	maxProgress   int
	interval      time.Duration
	goFn          func(func())
	onTransition  func(entities.FlowSnapshot)

	mu        sync.Mutex
	baseCtx   context.Context
	cancel    context.CancelFunc
	state     entities.FlowState
	progress  int
	attempt   int
	failure   error
	startedAt time.Time
	updatedAt time.Time
	started   bool
	tornDown  bool
	ticker    clock.Timer
	finalizer clock.Timer
}

// New creates a controller in the processing state. Nothing runs until Start.
func New(cfg Config) (*Controller, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	interval := cfg.MinProcessing / time.Duration(cfg.MaxProgress)
	if interval <= 0 {
		interval = time.Millisecond
	}

	return &Controller{
		id:            cfg.ID,
		req:           cfg.Request,
		gateway:       cfg.Gateway,
		subscriptions: cfg.Subscriptions,
		telemetry:     cfg.Telemetry,
		nav:           cfg.Navigation,
		clock:         cfg.Clock,
		minProcessing: cfg.MinProcessing,
		maxProgress:   cfg.MaxProgress,
		interval:      interval,
		goFn:          cfg.Go,
		onTransition:  cfg.OnTransition,
		state:         entities.FlowStateProcessing,
	}, nil
}

// Start begins the first attempt. ctx bounds every collaborator call the
// flow makes; Teardown cancels it as well.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.tornDown {
		c.mu.Unlock()
		return ErrFlowTornDown
	}
	if c.started {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	c.started = true
	if ctx == nil {
		ctx = context.Background()
	}
	c.baseCtx = ctx
	attemptCtx, attempt := c.beginAttemptLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	log.Infof("[flow][controller] start flow_id=%s subscribe=%t tick=%s", c.id, c.req.Subscribe, c.interval)
	c.onTransition(snap)
	c.goFn(func() { c.process(attemptCtx, attempt) })
	return nil
}

// Retry starts a new attempt from the failed state.
func (c *Controller) Retry() error {
	c.mu.Lock()
	if c.tornDown {
		c.mu.Unlock()
		return ErrFlowTornDown
	}
	if c.state != entities.FlowStateFailed {
		state := c.state
		c.mu.Unlock()
		return fmt.Errorf("%w: retry from %s", ErrInvalidTransition, state)
	}
	c.releaseLocked()
	attemptCtx, attempt := c.beginAttemptLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	log.Infof("[flow][controller] retry flow_id=%s attempt=%d", c.id, attempt)
	c.onTransition(snap)
	c.goFn(func() { c.process(attemptCtx, attempt) })
	return nil
}

// Teardown releases the ticker, the completion timer and the in-flight
// collaborator context. It is safe to call any number of times.
func (c *Controller) Teardown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tornDown {
		return
	}
	c.tornDown = true
	c.releaseLocked()
	log.Debugf("[flow][controller] teardown flow_id=%s state=%s", c.id, c.state)
}

// Close dismisses the success screen. Only the standard success screen
// clears the trial-upgrade flag; the prorated one just closes.
func (c *Controller) Close() error {
	if err := c.requireSucceeded("close"); err != nil {
		return err
	}
	if c.req.IsUpgradeFromTrial && !c.req.IsProratedPayment {
		c.nav.ClearTrialUpgrade()
	}
	c.nav.Close()
	return nil
}

// ViewBilling dismisses the success screen and opens the subscription page.
// The prorated success screen has no billing link.
func (c *Controller) ViewBilling() error {
	if err := c.requireSucceeded("view billing"); err != nil {
		return err
	}
	if c.req.IsProratedPayment {
		return fmt.Errorf("%w: view billing from prorated success", ErrInvalidTransition)
	}
	c.nav.Close()
	c.nav.Navigate(BillingSubscriptionPath)
	return nil
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() entities.FlowSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Interval is the ticker period.
func (c *Controller) Interval() time.Duration {
	return c.interval
}

func (c *Controller) requireSucceeded(action string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tornDown {
		return ErrFlowTornDown
	}
	if c.state != entities.FlowStateSucceeded {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, c.state)
	}
	return nil
}

func (c *Controller) beginAttemptLocked() (context.Context, int) {
	c.attempt++
	c.state = entities.FlowStateProcessing
	c.progress = 0
	c.failure = nil
	c.startedAt = c.clock.Now()
	c.updatedAt = c.startedAt

	ctx, cancel := context.WithCancel(c.baseCtx)
	c.cancel = cancel

	attempt := c.attempt
	c.ticker = c.clock.TickFunc(c.interval, func() { c.tick(attempt) })
	return ctx, attempt
}

// releaseLocked stops every resource owned by the running attempt.
func (c *Controller) releaseLocked() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	if c.finalizer != nil {
		c.finalizer.Stop()
		c.finalizer = nil
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Controller) currentLocked(attempt int) bool {
	return !c.tornDown && attempt == c.attempt && c.state == entities.FlowStateProcessing
}

func (c *Controller) current(attempt int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentLocked(attempt)
}

func (c *Controller) tick(attempt int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentLocked(attempt) || c.ticker == nil {
		return
	}
	if c.progress < c.maxProgress {
		c.progress++
	}
	if c.progress >= c.maxProgress {
		c.ticker.Stop()
		c.ticker = nil
	}
}

func (c *Controller) process(ctx context.Context, attempt int) {
	accepted, err := c.addPaymentMethod(ctx)
	if err != nil || !accepted {
		c.fail(attempt, rejection(ErrPaymentRejected, err))
		return
	}

	if c.req.Subscribe {
		if !c.current(attempt) {
			log.Debugf("[flow][controller] skipping subscription for stale attempt flow_id=%s attempt=%d", c.id, attempt)
			return
		}
		ok, err := c.subscribe(ctx)
		if err != nil || !ok {
			c.fail(attempt, rejection(ErrSubscriptionRejected, err))
			return
		}
	}

	c.completionTiming(attempt)
}

func (c *Controller) addPaymentMethod(ctx context.Context) (accepted bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			accepted, err = false, fmt.Errorf("payment gateway panic: %v", r)
		}
	}()
	return c.gateway.AddPaymentMethod(ctx, c.req.CardToken, c.req.BillingDetails, c.req.DevMode)
}

func (c *Controller) subscribe(ctx context.Context) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok, err = false, fmt.Errorf("subscription service panic: %v", r)
		}
	}()
	return c.subscriptions.Subscribe(ctx, c.req.SelectedProductID)
}

func rejection(kind, cause error) error {
	if cause == nil {
		return kind
	}
	return fmt.Errorf("%w: %v", kind, cause)
}

// completionTiming holds the success screen back until MinProcessing has
// passed since the attempt started.
func (c *Controller) completionTiming(attempt int) {
	c.mu.Lock()
	if !c.currentLocked(attempt) {
		c.mu.Unlock()
		return
	}
	elapsed := c.clock.Now().Sub(c.startedAt)
	if remaining := c.minProcessing - elapsed; remaining > 0 {
		c.finalizer = c.clock.AfterFunc(remaining, func() { c.finalize(attempt) })
		c.mu.Unlock()
		log.Debugf("[flow][controller] delaying success flow_id=%s remaining=%s", c.id, remaining)
		return
	}
	c.mu.Unlock()

	c.finalize(attempt)
}

func (c *Controller) finalize(attempt int) {
	c.mu.Lock()
	if !c.currentLocked(attempt) {
		c.mu.Unlock()
		return
	}
	c.releaseLocked()
	c.progress = 100
	c.state = entities.FlowStateSucceeded
	c.updatedAt = c.clock.Now()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	log.Infof("[flow][controller] succeeded flow_id=%s attempt=%d", c.id, attempt)
	c.telemetry.Record(entities.TelemetryEventCompletePaymentSuccess, entities.TelemetryCategoryCloudAdmin)
	c.telemetry.Record(entities.TelemetryEventPageviewPaymentSuccess, entities.TelemetryCategoryCloudPurchasing)
	c.onTransition(snap)
}

func (c *Controller) fail(attempt int, reason error) {
	c.mu.Lock()
	if !c.currentLocked(attempt) {
		c.mu.Unlock()
		log.Debugf("[flow][controller] dropping stale result flow_id=%s attempt=%d err=%v", c.id, attempt, reason)
		return
	}
	c.releaseLocked()
	c.state = entities.FlowStateFailed
	c.failure = reason
	c.updatedAt = c.clock.Now()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	log.Warnf("[flow][controller] failed flow_id=%s attempt=%d err=%v", c.id, attempt, reason)
	c.telemetry.Record(entities.TelemetryEventPageviewPaymentFailed, entities.TelemetryCategoryCloudPurchasing)
	c.onTransition(snap)
}

func (c *Controller) snapshotLocked() entities.FlowSnapshot {
	s := entities.FlowSnapshot{
		ID:        c.id,
		State:     c.state,
		Progress:  c.progress,
		Attempt:   c.attempt,
		ProductID: c.req.SelectedProductID,
		StartedAt: c.startedAt,
		UpdatedAt: c.updatedAt,

		CurrentProductID:   c.req.CurrentProductID,
		IsProratedPayment:  c.req.IsProratedPayment,
		IsUpgradeFromTrial: c.req.IsUpgradeFromTrial,
	}
	if c.failure != nil {
		s.Failure = c.failure.Error()
	}
	return s
}

type noopTelemetry struct{}

func (noopTelemetry) Record(string, string) {}

type noopNavigation struct{}

func (noopNavigation) Navigate(string)    {}
func (noopNavigation) Close()             {}
func (noopNavigation) ClearTrialUpgrade() {}
