package response

import (
	"encoding/json"
	"testing"
	"time"

	"cloud_checkout/internal/domain/entities"
)

func TestFromProduct(t *testing.T) {
	now := time.Now().UTC()
	res := FromProduct(entities.Product{ID: "prod-1", SKU: "cloud-professional", Name: "Professional", Price: 10, CreatedAt: now, UpdatedAt: now})
	if res.ProductID != "prod-1" || res.SKU != "cloud-professional" || res.Price != 10 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromPaymentMethod(t *testing.T) {
	now := time.Now().UTC()
	raw := json.RawMessage(`{"id":123}`)
	p := entities.PaymentMethod{
		ID:                 "pay-1",
		CustomerEmail:      "ada@example.com",
		Brand:              "visa",
		Date:               now,
		Status:             entities.PaymentMethodStatusAprovado,
		ProviderPayloadRaw: raw,
		ProviderPayload:    map[string]interface{}{"a": "b"},
	}

	res := FromPaymentMethod(p)
	if res.PaymentMethodID != "pay-1" || res.Status != "aprovado" || !res.Accepted {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.ProviderPayloadRaw != string(raw) || res.ProviderPayload["a"] != "b" {
		t.Fatalf("unexpected payload: %+v", res)
	}

	list := FromPaymentMethods([]entities.PaymentMethod{p, {ID: "pay-2", Status: entities.PaymentMethodStatusNegado}})
	if len(list) != 2 || list[1].Accepted {
		t.Fatalf("unexpected list: %+v", list)
	}
	if empty := FromPaymentMethods(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
}
