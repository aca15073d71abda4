package handlers

import (
	"errors"
	"net/http"

	request "cloud_checkout/internal/adapter/http/dto/request"
	response "cloud_checkout/internal/adapter/http/dto/response"
	"cloud_checkout/internal/usecase"
	"cloud_checkout/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	log = logrus.WithField("component", "http")

	errInvalidProductPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)
)

// ProductHandler serves the plan catalog.
type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// CreateProduct godoc
// @Summary      Create a plan
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        product  body      request.CreateProductRequest  true  "Plan"
// @Success      201      {object}  response.ProductResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var payload request.CreateProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Infof("[product][handler] invalid payload err=%v", err)
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateProduct(c.Request.Context(), payload.SKU, payload.Name, *payload.Price)
	if err != nil {
		log.Warnf("[product][handler] create failed sku=%s err=%v", payload.SKU, err)
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Infof("[product][handler] create success product_id=%s sku=%s", created.ID, created.SKU)

	c.JSON(http.StatusCreated, response.FromProduct(created))
}

// GetProduct godoc
// @Summary      Get a plan
// @Tags         products
// @Produce      json
// @Param        product_id  path      string  true  "Product ID"
// @Success      200         {object}  response.ProductResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /products/{product_id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := c.Param("product_id")

	p, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(p))
}

// UpdatePrice godoc
// @Summary      Change a plan's price
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        product_id  path      string                             true  "Product ID"
// @Param        price       body      request.UpdateProductPriceRequest  true  "New price"
// @Success      200         {object}  response.ProductResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /products/{product_id}/price [patch]
func (h *ProductHandler) UpdatePrice(c *gin.Context) {
	id := c.Param("product_id")

	var payload request.UpdateProductPriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdatePrice(c.Request.Context(), id, *payload.Price)
	if err != nil {
		log.Warnf("[product][handler] update price failed product_id=%s err=%v", id, err)
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Infof("[product][handler] update price success product_id=%s price=%.2f", updated.ID, updated.Price)

	c.JSON(http.StatusOK, response.FromProduct(updated))
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidProductSKU),
		errors.Is(err, usecase.ErrInvalidProductName),
		errors.Is(err, usecase.ErrInvalidProductPrice):
		return pkg.NewDomainError("INVALID_PRODUCT_INPUT", "Invalid product payload", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductAlreadyExists):
		return pkg.NewDomainErrorSimple("PRODUCT_ALREADY_EXISTS", "A product with this SKU already exists", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
