package payload

import "github.com/vasapolrittideah/streamhub-api/services/api-service/internal/model"

type ListProductsRequest struct {
	CategoryID string `form:"categoryId"`
	Search     string `form:"q"`
	Limit      int64  `form:"limit"      validate:"gte=0,lte=100"`
	Skip       int64  `form:"skip"       validate:"gte=0"`
}

// ProductResponse is a product with its discounted price.
type ProductResponse struct {
	model.Product
	FinalPrice float64 `json:"finalPrice"`
}

type SaveProductRequest struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"        validate:"required,max=200"`
	Description string  `json:"description"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Discount    float64 `json:"discount"    validate:"gte=0,lte=100"`
	Image       string  `json:"image"`
	CategoryID  string  `json:"categoryId"  validate:"required"`
	Stock       int     `json:"stock"       validate:"gte=0"`
}

type SaveCategoryRequest struct {
	ID    string `json:"_id"`
	Name  string `json:"name"  validate:"required,max=100"`
	Icon  string `json:"icon"`
	Order int    `json:"order"`
}
