package handlers

import (
	"context"
	"errors"
	"net/http"

	request "cloud_checkout/internal/adapter/http/dto/request"
	response "cloud_checkout/internal/adapter/http/dto/response"
	"cloud_checkout/internal/domain/entities"
	"cloud_checkout/internal/usecase"
	"cloud_checkout/internal/usecase/paymentflow"
	"cloud_checkout/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)

// CheckoutHandler drives payment flows on behalf of the purchase screen.
//
// Starting a flow returns immediately with the processing screen; the host
// polls GetFlow until the flow settles.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// StartFlow godoc
// @Summary      Start a payment flow
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        checkout  body      request.StartCheckoutRequest  true  "Purchase form"
// @Success      202       {object}  response.FlowResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Router       /checkout/flows [post]
func (h *CheckoutHandler) StartFlow(c *gin.Context) {
	var payload request.StartCheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Infof("[checkout][handler] invalid payload err=%v", err)
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	view, err := h.usecase.StartFlow(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Warnf("[checkout][handler] start failed selected=%s err=%v", payload.SelectedProductID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Infof("[checkout][handler] start success flow_id=%s state=%s", view.Snapshot.ID, view.Snapshot.State)

	c.JSON(http.StatusAccepted, response.FromFlowView(view))
}

// GetFlow godoc
// @Summary      Get the current screen of a payment flow
// @Tags         checkout
// @Produce      json
// @Param        flow_id  path      string  true  "Flow ID"
// @Success      200      {object}  response.FlowResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /checkout/flows/{flow_id} [get]
func (h *CheckoutHandler) GetFlow(c *gin.Context) {
	h.respondWithFlow(c, "get", h.usecase.GetFlow)
}

// RetryFlow godoc
// @Summary      Retry a failed payment flow
// @Tags         checkout
// @Produce      json
// @Param        flow_id  path      string  true  "Flow ID"
// @Success      200      {object}  response.FlowResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /checkout/flows/{flow_id}/retry [post]
func (h *CheckoutHandler) RetryFlow(c *gin.Context) {
	h.respondWithFlow(c, "retry", h.usecase.RetryFlow)
}

// CloseFlow godoc
// @Summary      Dismiss the success screen
// @Tags         checkout
// @Produce      json
// @Param        flow_id  path      string  true  "Flow ID"
// @Success      200      {object}  response.FlowResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /checkout/flows/{flow_id}/close [post]
func (h *CheckoutHandler) CloseFlow(c *gin.Context) {
	h.respondWithFlow(c, "close", h.usecase.CloseFlow)
}

// ViewBilling godoc
// @Summary      Dismiss the success screen and open the billing page
// @Tags         checkout
// @Produce      json
// @Param        flow_id  path      string  true  "Flow ID"
// @Success      200      {object}  response.FlowResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /checkout/flows/{flow_id}/view-billing [post]
func (h *CheckoutHandler) ViewBilling(c *gin.Context) {
	h.respondWithFlow(c, "view-billing", h.usecase.ViewBilling)
}

// DismissFlow godoc
// @Summary      Tear a payment flow down
// @Tags         checkout
// @Param        flow_id  path  string  true  "Flow ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /checkout/flows/{flow_id} [delete]
func (h *CheckoutHandler) DismissFlow(c *gin.Context) {
	id := c.Param("flow_id")

	if err := h.usecase.DismissFlow(c.Request.Context(), id); err != nil {
		log.Warnf("[checkout][handler] dismiss failed flow_id=%s err=%v", id, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Infof("[checkout][handler] dismiss success flow_id=%s", id)

	c.Status(http.StatusNoContent)
}

func (h *CheckoutHandler) respondWithFlow(
	c *gin.Context,
	action string,
	fn func(ctx context.Context, id string) (entities.FlowView, error),
) {
	id := c.Param("flow_id")

	view, err := fn(c.Request.Context(), id)
	if err != nil {
		log.Warnf("[checkout][handler] %s failed flow_id=%s err=%v", action, id, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Debugf("[checkout][handler] %s success flow_id=%s state=%s progress=%d", action, id, view.Snapshot.State, view.Snapshot.Progress)

	c.JSON(http.StatusOK, response.FromFlowView(view))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFlowID),
		errors.Is(err, usecase.ErrInvalidCustomerEmail),
		errors.Is(err, usecase.ErrInvalidCheckoutProduct),
		errors.Is(err, usecase.ErrInvalidProductID):
		return pkg.NewDomainError("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFlowNotFound):
		return pkg.NewDomainErrorSimple("FLOW_NOT_FOUND", "Checkout flow not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, paymentflow.ErrInvalidTransition), errors.Is(err, paymentflow.ErrAlreadyStarted):
		return pkg.NewDomainError("INVALID_FLOW_TRANSITION", "Action not allowed in the current flow state", err, http.StatusConflict)
	case errors.Is(err, paymentflow.ErrFlowTornDown):
		return pkg.NewDomainErrorSimple("FLOW_CLOSED", "Checkout flow was already dismissed", http.StatusGone)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
