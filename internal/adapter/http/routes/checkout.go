package routes

import (
	"cloud_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts       = "/products"
	PathPaymentMethods = "/payment-methods"
	PathCheckoutFlows  = "/checkout/flows"
)

func addProductRoutes(rg *gin.RouterGroup, h *handlers.ProductHandler) {
	products := rg.Group(PathProducts)
	{
		products.POST("", h.CreateProduct)
		products.GET("/:product_id", h.GetProduct)
		products.PATCH("/:product_id/price", h.UpdatePrice)
	}
}

func addPaymentMethodRoutes(rg *gin.RouterGroup, h *handlers.PaymentMethodHandler) {
	methods := rg.Group(PathPaymentMethods)
	{
		methods.GET("", h.ListPaymentMethods)
		methods.GET("/:payment_method_id", h.GetPaymentMethod)
	}
}

func addCheckoutRoutes(rg *gin.RouterGroup, h *handlers.CheckoutHandler) {
	flows := rg.Group(PathCheckoutFlows)
	{
		// Flows are polled by the purchase screen; actions mirror its buttons.
		flows.POST("", h.StartFlow)
		flows.GET("/:flow_id", h.GetFlow)
		flows.DELETE("/:flow_id", h.DismissFlow)
		flows.POST("/:flow_id/retry", h.RetryFlow)
		flows.POST("/:flow_id/close", h.CloseFlow)
		flows.POST("/:flow_id/view-billing", h.ViewBilling)
	}
}
