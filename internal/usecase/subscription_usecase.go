package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud_checkout/internal/domain/entities"
	"cloud_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidSubscriptionProductID = errors.New("invalid subscription product id")

// SubscriptionUseCase subscribes the workspace to catalog products.
type SubscriptionUseCase struct {
	repo     interfaces.ISubscriptionRepository
	products interfaces.IProductRepository
	now      func() time.Time
}

var _ interfaces.ISubscriptionService = (*SubscriptionUseCase)(nil)

func NewSubscriptionUseCase(repo interfaces.ISubscriptionRepository, products interfaces.IProductRepository) *SubscriptionUseCase {
	return &SubscriptionUseCase{repo: repo, products: products, now: time.Now}
}

// Subscribe returns (true, nil) only when an active subscription was stored.
func (u *SubscriptionUseCase) Subscribe(ctx context.Context, productID string) (bool, error) {
	s, err := u.Create(ctx, productID)
	if err != nil {
		return false, err
	}
	return s.Status == entities.SubscriptionStatusActive, nil
}

func (u *SubscriptionUseCase) Create(ctx context.Context, productID string) (entities.Subscription, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Subscription{}, ErrInvalidSubscriptionProductID
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		log.Errorf("[subscription][usecase] failed loading product product_id=%s err=%v", productID, err)
		return entities.Subscription{}, err
	}
	if product.ID == "" {
		log.Warnf("[subscription][usecase] product not found product_id=%s", productID)
		return entities.Subscription{}, ErrProductNotFound
	}

	now := u.now().UTC()
	s := entities.Subscription{
		ID:              uuid.NewString(),
		ProductID:       product.ID,
		Status:          entities.SubscriptionStatusActive,
		StartedAt:       now,
		NextBillingDate: entities.NextBillingDate(now),
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		log.Errorf("[subscription][usecase] repository create failed product_id=%s err=%v", productID, err)
		return entities.Subscription{}, err
	}
	log.Infof("[subscription][usecase] subscribed product_id=%s subscription_id=%s next_billing=%s", productID, created.ID, created.NextBillingDate.Format("2006-01-02"))
	return created, nil
}
