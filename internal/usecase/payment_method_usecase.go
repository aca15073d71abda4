package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"cloud_checkout/internal/domain/entities"
	"cloud_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "usecase")

var (
	ErrPaymentMethodNotFound          = errors.New("payment method not found")
	ErrInvalidPaymentMethodID         = errors.New("invalid payment method id")
	ErrInvalidCardToken               = errors.New("invalid card token")
	ErrInvalidCardBrand               = errors.New("invalid card brand")
	ErrInvalidCustomerEmail           = errors.New("invalid customer email")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

const (
	DefaultVerificationAmount      = 1.0
	DefaultVerificationDescription = "Cloud workspace payment method verification"
)

//go:generate mockgen -source=payment_method_usecase.go -destination=../adapter/http/handlers/mocks/payment_method_usecase_mock.go -package=mocks

// IPaymentMethodUseCase registers cards against the payment provider.
//
// A card is verified with a small charge; the provider's answer decides
// whether the card is accepted and is stored alongside the record.
type IPaymentMethodUseCase interface {
	AddPaymentMethod(ctx context.Context, cardToken string, details entities.BillingDetails, devMode bool) (bool, error)
	Register(ctx context.Context, cardToken string, details entities.BillingDetails, devMode bool) (entities.PaymentMethod, error)
	GetByID(ctx context.Context, id string) (entities.PaymentMethod, error)
	ListByEmail(ctx context.Context, email string) ([]entities.PaymentMethod, error)
}

type PaymentMethodConfig struct {
	VerificationAmount float64
	Description        string
}

type PaymentMethodUseCase struct {
	repo    interfaces.IPaymentMethodRepository
	gateway interfaces.IPaymentGateway
	cfg     PaymentMethodConfig
}

var (
	_ IPaymentMethodUseCase              = (*PaymentMethodUseCase)(nil)
	_ interfaces.IPaymentMethodRegistrar = (*PaymentMethodUseCase)(nil)
)

func NewPaymentMethodUseCase(repo interfaces.IPaymentMethodRepository, gateway interfaces.IPaymentGateway, cfg PaymentMethodConfig) *PaymentMethodUseCase {
	if cfg.VerificationAmount <= 0 {
		cfg.VerificationAmount = DefaultVerificationAmount
	}
	if strings.TrimSpace(cfg.Description) == "" {
		cfg.Description = DefaultVerificationDescription
	}
	return &PaymentMethodUseCase{repo: repo, gateway: gateway, cfg: cfg}
}

func (u *PaymentMethodUseCase) AddPaymentMethod(ctx context.Context, cardToken string, details entities.BillingDetails, devMode bool) (bool, error) {
	pm, err := u.Register(ctx, cardToken, details, devMode)
	if err != nil {
		return false, err
	}
	return pm.Accepted(), nil
}

func (u *PaymentMethodUseCase) Register(ctx context.Context, cardToken string, details entities.BillingDetails, devMode bool) (entities.PaymentMethod, error) {
	email := strings.TrimSpace(details.Email)
	log.Infof("[payment][usecase] register start email=%q dev_mode=%t", email, devMode)

	if email == "" {
		log.Warnf("[payment][usecase] invalid email (empty)")
		return entities.PaymentMethod{}, ErrInvalidCustomerEmail
	}
	cardToken = strings.TrimSpace(cardToken)
	if cardToken == "" && !devMode {
		log.Warnf("[payment][usecase] invalid card token (empty) email=%s", email)
		return entities.PaymentMethod{}, ErrInvalidCardToken
	}
	if strings.TrimSpace(details.PaymentMethodID) == "" && !devMode {
		log.Warnf("[payment][usecase] missing payment_method_id email=%s", email)
		return entities.PaymentMethod{}, ErrInvalidCardBrand
	}
	if u.repo == nil {
		return entities.PaymentMethod{}, errors.New("payment method repository not configured")
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if devMode {
		// Dev mode never reaches the provider, so there is no provider payload to keep.
		log.Infof("[payment][usecase] dev mode; skipping payment gateway email=%s", email)
		providerStatus = "approved"
	} else {
		if u.gateway == nil {
			log.Errorf("[payment][usecase] gateway not configured email=%s", email)
			return entities.PaymentMethod{}, ErrPaymentGatewayNotConfigured
		}
		payload, err := json.Marshal(u.verificationPayload(cardToken, details))
		if err != nil {
			return entities.PaymentMethod{}, err
		}
		log.Debugf("[payment][usecase] calling payment gateway email=%s payload_len=%d", email, len(payload))
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Warnf("[payment][usecase] payment gateway failed email=%s err=%v", email, err)
			return entities.PaymentMethod{}, classifyGatewayError(err)
		}
	}
	log.Infof("[payment][usecase] payment gateway answered email=%s provider_payment_id=%s provider_status=%s", email, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if len(providerResp) > 0 {
		if err := json.Unmarshal(providerResp, &parsed); err != nil {
			log.Debugf("[payment][usecase] provider response unmarshal failed email=%s err=%v", email, err)
		}
	}
	if strings.TrimSpace(providerPaymentID) == "" {
		providerPaymentID = uuid.NewString()
	}

	p := entities.PaymentMethod{
		ID:                 providerPaymentID,
		CustomerEmail:      email,
		Brand:              strings.TrimSpace(details.PaymentMethodID),
		Date:               time.Now().UTC(),
		Status:             paymentMethodStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Errorf("[payment][usecase] payment method repository create failed email=%s id=%s err=%v", email, p.ID, err)
		return entities.PaymentMethod{}, err
	}
	log.Infof("[payment][usecase] register done email=%s id=%s status=%s", email, created.ID, created.Status)
	return created, nil
}

func (u *PaymentMethodUseCase) verificationPayload(cardToken string, details entities.BillingDetails) map[string]any {
	email := strings.TrimSpace(details.Email)
	payer := map[string]any{
		"email":      email,
		"first_name": details.FirstName(),
		"last_name":  details.LastName(),
	}
	if details.AddressLine1 != "" || details.PostalCode != "" {
		payer["address"] = map[string]any{
			"street_name":  strings.TrimSpace(strings.Join([]string{details.AddressLine1, details.AddressLine2}, " ")),
			"zip_code":     details.PostalCode,
			"city":         details.City,
			"federal_unit": details.State,
		}
	}
	m := map[string]any{
		"token":              cardToken,
		"payment_method_id":  strings.TrimSpace(details.PaymentMethodID),
		"transaction_amount": u.cfg.VerificationAmount,
		"installments":       1,
		"description":        u.cfg.Description,
		"external_reference": email,
		"payer":              payer,
	}
	ensurePayerDefaults(m)
	return m
}

func paymentMethodStatusFromProvider(status string) entities.PaymentMethodStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentMethodStatusAprovado
	case "rejected", "cancelled":
		return entities.PaymentMethodStatusNegado
	default:
		return entities.PaymentMethodStatusPendente
	}
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasNonEmptyString(payer, "first_name") {
		delete(payer, "first_name")
	}
	if !hasNonEmptyString(payer, "last_name") {
		delete(payer, "last_name")
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func (u *PaymentMethodUseCase) GetByID(ctx context.Context, id string) (entities.PaymentMethod, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentMethod{}, ErrInvalidPaymentMethodID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	if p.ID == "" {
		return entities.PaymentMethod{}, ErrPaymentMethodNotFound
	}
	return p, nil
}

func (u *PaymentMethodUseCase) ListByEmail(ctx context.Context, email string) ([]entities.PaymentMethod, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrInvalidCustomerEmail
	}
	return u.repo.ListByCustomerEmail(ctx, email)
}
