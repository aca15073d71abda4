package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"cloud_checkout/internal/domain/entities"
	"cloud_checkout/internal/infrastructure/clock"
	"cloud_checkout/internal/usecase/interfaces"
	"cloud_checkout/internal/usecase/paymentflow"

	"github.com/google/uuid"
)

var (
	ErrFlowNotFound           = errors.New("checkout flow not found")
	ErrInvalidFlowID          = errors.New("invalid checkout flow id")
	ErrInvalidCheckoutProduct = errors.New("selected product is required to subscribe")
)

const (
	DefaultFlowTTL     = 30 * time.Minute
	DefaultSupportLink = "https://support.example.com/hc/en-us/requests/new"

	flowSaveTimeout = 5 * time.Second
)

//go:generate mockgen -source=checkout_usecase.go -destination=../adapter/http/handlers/mocks/checkout_usecase_mock.go -package=mocks

// ICheckoutUseCase owns the live checkout flows of the purchase modal.
//
// A flow lives in memory from StartFlow until it is dismissed or swept.
// Every transition is also stored so GetFlow can still answer afterwards.
type ICheckoutUseCase interface {
	StartFlow(ctx context.Context, req entities.CheckoutRequest) (entities.FlowView, error)
	GetFlow(ctx context.Context, id string) (entities.FlowView, error)
	RetryFlow(ctx context.Context, id string) (entities.FlowView, error)
	CloseFlow(ctx context.Context, id string) (entities.FlowView, error)
	ViewBilling(ctx context.Context, id string) (entities.FlowView, error)
	DismissFlow(ctx context.Context, id string) error
}

type CheckoutConfig struct {
	MinProcessing time.Duration
	MaxProgress   int
	// FlowTTL is how long a finished flow stays in memory.
	FlowTTL     time.Duration
	SupportLink string

	Clock clock.Clock
	// Go runs collaborator calls; nil spawns a goroutine per attempt.
	Go func(func())
}

type CheckoutUseCase struct {
	products      interfaces.IProductRepository
	registrar     interfaces.IPaymentMethodRegistrar
	subscriptions interfaces.ISubscriptionService
	telemetry     interfaces.ITelemetryClient
	flows         interfaces.IFlowRepository
	cfg           CheckoutConfig

	mu       sync.Mutex
	sessions map[string]*checkoutSession
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	products interfaces.IProductRepository,
	registrar interfaces.IPaymentMethodRegistrar,
	subscriptions interfaces.ISubscriptionService,
	telemetry interfaces.ITelemetryClient,
	flows interfaces.IFlowRepository,
	cfg CheckoutConfig,
) *CheckoutUseCase {
	if cfg.FlowTTL <= 0 {
		cfg.FlowTTL = DefaultFlowTTL
	}
	if strings.TrimSpace(cfg.SupportLink) == "" {
		cfg.SupportLink = DefaultSupportLink
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.Real{}
	}
	return &CheckoutUseCase{
		products:      products,
		registrar:     registrar,
		subscriptions: subscriptions,
		telemetry:     telemetry,
		flows:         flows,
		cfg:           cfg,
		sessions:      map[string]*checkoutSession{},
	}
}

func (u *CheckoutUseCase) StartFlow(ctx context.Context, req entities.CheckoutRequest) (entities.FlowView, error) {
	req.SelectedProductID = strings.TrimSpace(req.SelectedProductID)
	req.CurrentProductID = strings.TrimSpace(req.CurrentProductID)
	if strings.TrimSpace(req.BillingDetails.Email) == "" {
		return entities.FlowView{}, ErrInvalidCustomerEmail
	}
	if req.Subscribe && req.SelectedProductID == "" {
		return entities.FlowView{}, ErrInvalidCheckoutProduct
	}

	sess := &checkoutSession{req: req, clock: u.cfg.Clock}
	if req.SelectedProductID != "" {
		p, err := u.loadProduct(ctx, req.SelectedProductID)
		if err != nil {
			return entities.FlowView{}, err
		}
		sess.selected = &p
	}
	if req.CurrentProductID != "" {
		if p, err := u.loadProduct(ctx, req.CurrentProductID); err == nil {
			sess.current = &p
		} else {
			log.Warnf("[checkout][usecase] current product unavailable product_id=%s err=%v", req.CurrentProductID, err)
		}
	}

	id := uuid.NewString()
	ctrl, err := paymentflow.New(paymentflow.Config{
		ID:            id,
		Request:       req,
		Gateway:       u.registrar,
		Subscriptions: u.subscriptions,
		Telemetry:     u.telemetry,
		Navigation:    sess,
		Clock:         u.cfg.Clock,
		MinProcessing: u.cfg.MinProcessing,
		MaxProgress:   u.cfg.MaxProgress,
		Go:            u.cfg.Go,
		OnTransition:  func(s entities.FlowSnapshot) { u.persist(sess, s) },
	})
	if err != nil {
		return entities.FlowView{}, err
	}
	sess.ctrl = ctrl

	u.mu.Lock()
	u.sessions[id] = sess
	u.mu.Unlock()

	// The flow outlives the HTTP request that started it.
	if err := ctrl.Start(context.WithoutCancel(ctx)); err != nil {
		u.remove(id)
		return entities.FlowView{}, err
	}
	log.Infof("[checkout][usecase] flow started flow_id=%s selected=%s subscribe=%t", id, req.SelectedProductID, req.Subscribe)
	return u.view(sess), nil
}

func (u *CheckoutUseCase) GetFlow(ctx context.Context, id string) (entities.FlowView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FlowView{}, ErrInvalidFlowID
	}
	if sess, ok := u.lookup(id); ok {
		return u.view(sess), nil
	}
	if u.flows == nil {
		return entities.FlowView{}, ErrFlowNotFound
	}

	snap, err := u.flows.GetByID(ctx, id)
	if err != nil {
		return entities.FlowView{}, err
	}
	if snap.ID == "" {
		return entities.FlowView{}, ErrFlowNotFound
	}
	v := entities.FlowView{
		Snapshot:           snap,
		IsProratedPayment:  snap.IsProratedPayment,
		IsUpgradeFromTrial: snap.IsUpgradeFromTrial,
		ContactSupportLink: u.cfg.SupportLink,
		NextBillingDate:    entities.NextBillingDate(snap.UpdatedAt),
	}
	if snap.ProductID != "" {
		if p, err := u.loadProduct(ctx, snap.ProductID); err == nil {
			v.SelectedProduct = &p
		}
	}
	if snap.CurrentProductID != "" {
		if p, err := u.loadProduct(ctx, snap.CurrentProductID); err == nil {
			v.CurrentProduct = &p
		}
	}
	return v, nil
}

func (u *CheckoutUseCase) RetryFlow(_ context.Context, id string) (entities.FlowView, error) {
	return u.act(id, func(c *paymentflow.Controller) error { return c.Retry() })
}

func (u *CheckoutUseCase) CloseFlow(_ context.Context, id string) (entities.FlowView, error) {
	return u.act(id, func(c *paymentflow.Controller) error { return c.Close() })
}

func (u *CheckoutUseCase) ViewBilling(_ context.Context, id string) (entities.FlowView, error) {
	return u.act(id, func(c *paymentflow.Controller) error { return c.ViewBilling() })
}

// DismissFlow tears the flow down and forgets it. Its stored record stays.
func (u *CheckoutUseCase) DismissFlow(_ context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidFlowID
	}
	sess, ok := u.remove(id)
	if !ok {
		return ErrFlowNotFound
	}
	sess.ctrl.Teardown()
	log.Infof("[checkout][usecase] flow dismissed flow_id=%s", id)
	return nil
}

// Sweep evicts flows that finished more than FlowTTL before now and returns
// how many were evicted.
func (u *CheckoutUseCase) Sweep(now time.Time) int {
	u.mu.Lock()
	var expired []*checkoutSession
	for id, sess := range u.sessions {
		snap := sess.ctrl.Snapshot()
		if snap.State.Terminal() && now.Sub(snap.UpdatedAt) >= u.cfg.FlowTTL {
			expired = append(expired, sess)
			delete(u.sessions, id)
		}
	}
	u.mu.Unlock()

	for _, sess := range expired {
		sess.ctrl.Teardown()
	}
	if len(expired) > 0 {
		log.Infof("[checkout][usecase] swept flows count=%d", len(expired))
	}
	return len(expired)
}

// RunJanitor sweeps every interval until ctx is done.
func (u *CheckoutUseCase) RunJanitor(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			u.Sweep(u.cfg.Clock.Now())
		}
	}
}

// Shutdown tears down every live flow.
func (u *CheckoutUseCase) Shutdown() {
	u.mu.Lock()
	sessions := u.sessions
	u.sessions = map[string]*checkoutSession{}
	u.mu.Unlock()

	for _, sess := range sessions {
		sess.ctrl.Teardown()
	}
}

func (u *CheckoutUseCase) act(id string, fn func(*paymentflow.Controller) error) (entities.FlowView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FlowView{}, ErrInvalidFlowID
	}
	sess, ok := u.lookup(id)
	if !ok {
		return entities.FlowView{}, ErrFlowNotFound
	}
	if err := fn(sess.ctrl); err != nil {
		return entities.FlowView{}, err
	}
	return u.view(sess), nil
}

func (u *CheckoutUseCase) lookup(id string) (*checkoutSession, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	sess, ok := u.sessions[id]
	return sess, ok
}

func (u *CheckoutUseCase) remove(id string) (*checkoutSession, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	sess, ok := u.sessions[id]
	delete(u.sessions, id)
	return sess, ok
}

func (u *CheckoutUseCase) loadProduct(ctx context.Context, id string) (entities.Product, error) {
	if u.products == nil {
		return entities.Product{}, errors.New("product repository not configured")
	}
	p, err := u.products.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *CheckoutUseCase) view(sess *checkoutSession) entities.FlowView {
	snap := sess.ctrl.Snapshot()
	billingFrom := snap.UpdatedAt
	if billingFrom.IsZero() {
		billingFrom = u.cfg.Clock.Now()
	}
	return entities.FlowView{
		Snapshot:           snap,
		SelectedProduct:    sess.selected,
		CurrentProduct:     sess.current,
		IsProratedPayment:  sess.req.IsProratedPayment,
		IsUpgradeFromTrial: sess.req.IsUpgradeFromTrial,
		ContactSupportLink: u.cfg.SupportLink,
		NextBillingDate:    entities.NextBillingDate(billingFrom),
		Navigations:        sess.navigations(),
	}
}

// persist stores s unless a later snapshot of the same flow was already
// stored. Failures are logged and otherwise ignored.
func (u *CheckoutUseCase) persist(sess *checkoutSession, s entities.FlowSnapshot) {
	if u.flows == nil {
		return
	}
	sess.saveMu.Lock()
	defer sess.saveMu.Unlock()
	if sess.saved && !newerSnapshot(s, sess.last) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), flowSaveTimeout)
	defer cancel()
	if err := u.flows.Save(ctx, s); err != nil {
		log.Errorf("[checkout][usecase] flow save failed flow_id=%s state=%s err=%v", s.ID, s.State, err)
		return
	}
	sess.last, sess.saved = s, true
}

// newerSnapshot orders snapshots of one flow by attempt, then by state: within
// an attempt, processing is always followed by exactly one terminal state.
// Update times are not compared.
func newerSnapshot(a, b entities.FlowSnapshot) bool {
	if a.Attempt != b.Attempt {
		return a.Attempt > b.Attempt
	}
	return b.State == entities.FlowStateProcessing && a.State != entities.FlowStateProcessing
}

// checkoutSession is the host side of one flow. It collects the navigation
// requests the flow makes so the UI can pick them up.
type checkoutSession struct {
	ctrl     *paymentflow.Controller
	req      entities.CheckoutRequest
	selected *entities.Product
	current  *entities.Product
	clock    clock.Clock

	navMu sync.Mutex
	nav   []entities.Navigation

	saveMu sync.Mutex
	last   entities.FlowSnapshot
	saved  bool
}

var _ interfaces.INavigationHost = (*checkoutSession)(nil)

func (s *checkoutSession) Navigate(path string) {
	s.push(entities.Navigation{Action: entities.NavigationActionNavigate, Path: path})
}

func (s *checkoutSession) Close() {
	s.push(entities.Navigation{Action: entities.NavigationActionClose})
}

func (s *checkoutSession) ClearTrialUpgrade() {
	s.push(entities.Navigation{Action: entities.NavigationActionClearTrialUpgrade})
}

func (s *checkoutSession) push(n entities.Navigation) {
	n.At = s.clock.Now()
	s.navMu.Lock()
	s.nav = append(s.nav, n)
	s.navMu.Unlock()
}

func (s *checkoutSession) navigations() []entities.Navigation {
	s.navMu.Lock()
	defer s.navMu.Unlock()
	if len(s.nav) == 0 {
		return nil
	}
	out := make([]entities.Navigation, len(s.nav))
	copy(out, s.nav)
	return out
}
