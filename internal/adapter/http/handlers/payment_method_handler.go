package handlers

import (
	"errors"
	"net/http"

	response "cloud_checkout/internal/adapter/http/dto/response"
	"cloud_checkout/internal/usecase"
	"cloud_checkout/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentMethodHandler exposes the payment methods registered by checkout flows.
type PaymentMethodHandler struct {
	usecase usecase.IPaymentMethodUseCase
}

func NewPaymentMethodHandler(uc usecase.IPaymentMethodUseCase) *PaymentMethodHandler {
	return &PaymentMethodHandler{usecase: uc}
}

// GetPaymentMethod godoc
// @Summary      Get a registered payment method
// @Tags         payment-methods
// @Produce      json
// @Param        payment_method_id  path      string  true  "Payment method ID"
// @Success      200                {object}  response.PaymentMethodResponse
// @Failure      404                {object}  pkg.HTTPError
// @Router       /payment-methods/{payment_method_id} [get]
func (h *PaymentMethodHandler) GetPaymentMethod(c *gin.Context) {
	id := c.Param("payment_method_id")
	log.Debugf("[payment-method][handler] get start payment_method_id=%s", id)

	pm, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Warnf("[payment-method][handler] get failed payment_method_id=%s err=%v", id, err)
		appErr := mapPaymentMethodError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentMethod(pm))
}

// ListPaymentMethods godoc
// @Summary      List a customer's payment methods
// @Tags         payment-methods
// @Produce      json
// @Param        email  query     string  true  "Customer email"
// @Success      200    {array}   response.PaymentMethodResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /payment-methods [get]
func (h *PaymentMethodHandler) ListPaymentMethods(c *gin.Context) {
	email := c.Query("email")

	list, err := h.usecase.ListByEmail(c.Request.Context(), email)
	if err != nil {
		log.Warnf("[payment-method][handler] list failed err=%v", err)
		appErr := mapPaymentMethodError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Debugf("[payment-method][handler] list success count=%d", len(list))

	c.JSON(http.StatusOK, response.FromPaymentMethods(list))
}

func mapPaymentMethodError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentMethodID),
		errors.Is(err, usecase.ErrInvalidCustomerEmail),
		errors.Is(err, usecase.ErrInvalidCardToken),
		errors.Is(err, usecase.ErrInvalidCardBrand),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentMethodNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_NOT_FOUND", "Payment method not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
