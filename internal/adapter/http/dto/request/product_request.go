package request

// Price is a pointer so a zero price still passes the required check.
type CreateProductRequest struct {
	SKU   string   `json:"sku" binding:"required"`
	Name  string   `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
}

type UpdateProductPriceRequest struct {
	Price *float64 `json:"price" binding:"required"`
}
