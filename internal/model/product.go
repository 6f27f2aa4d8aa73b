package model

import (
	"time"

	"github.com/deppfellow/storefront/internal/validation"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Tags        []string        `json:"tags" db:"tags"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
}

// ProductFilter narrows a product listing. An empty Tag matches every product.
type ProductFilter struct {
	Page
	Tag string `query:"tag" json:"tag,omitempty"`
}

// ListProductsRequest is bound from GET /products query parameters.
type ListProductsRequest struct {
	ProductFilter
}

// NewListProductsRequest pre-fills the paging defaults; the binder only
// overwrites parameters that are present.
func NewListProductsRequest() *ListProductsRequest {
	return &ListProductsRequest{ProductFilter: ProductFilter{Page: DefaultPage()}}
}

func (r *ListProductsRequest) Validate() error {
	return nil
}

type GetProductRequest struct {
	IDParam
}

type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Description string           `json:"description" validate:"max=2000"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Tags        []string         `json:"tags" validate:"omitempty,max=20,dive,min=1,max=50"`
}

func (r *CreateProductRequest) Validate() error {
	return validateStruct(r, func() *validation.CustomValidationError {
		return nonNegativePrice(r.Price)
	})
}

// EditProductRequest is a change-set: nil fields are left untouched.
type EditProductRequest struct {
	IDParam
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price"`
	Tags        *[]string        `json:"tags" validate:"omitempty,max=20,dive,min=1,max=50"`
}

func (r *EditProductRequest) Validate() error {
	return validateStruct(r, func() *validation.CustomValidationError {
		return nonNegativePrice(r.Price)
	})
}

type DeleteProductRequest struct {
	IDParam
}

func nonNegativePrice(price *decimal.Decimal) *validation.CustomValidationError {
	if price != nil && price.IsNegative() {
		return &validation.CustomValidationError{Field: "price", Message: "must not be negative"}
	}
	return nil
}
