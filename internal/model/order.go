package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

const DefaultOrderQuantity = 1

type Order struct {
	ID         string      `json:"id" db:"id"`
	ProductID  string      `json:"productId" db:"product_id"`
	Status     OrderStatus `json:"status" db:"status"`
	Quantity   int         `json:"quantity" db:"quantity"`
	BuyerEmail *string     `json:"buyerEmail,omitempty" db:"buyer_email"`
	CreatedAt  time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time   `json:"updatedAt" db:"updated_at"`
}

// OrderFilter narrows an order listing. Empty fields match everything.
// Status is passed through as given; an unknown status simply matches nothing.
type OrderFilter struct {
	Page
	ProductID string `query:"productId" json:"productId,omitempty"`
	Status    string `query:"status" json:"status,omitempty"`
}

// ListOrdersRequest is bound from GET /orders query parameters.
type ListOrdersRequest struct {
	OrderFilter
}

func NewListOrdersRequest() *ListOrdersRequest {
	return &ListOrdersRequest{OrderFilter: OrderFilter{Page: DefaultPage()}}
}

func (r *ListOrdersRequest) Validate() error {
	return nil
}

type CreateOrderRequest struct {
	ProductID  string       `json:"productId" validate:"required"`
	Status     *OrderStatus `json:"status" validate:"omitempty,oneof=pending paid shipped delivered cancelled"`
	Quantity   *int         `json:"quantity" validate:"omitempty,min=1"`
	BuyerEmail *string      `json:"buyerEmail" validate:"omitempty,email"`
}

func (r *CreateOrderRequest) Validate() error {
	return validateStruct(r)
}

// EditOrderRequest is a change-set: nil fields are left untouched.
type EditOrderRequest struct {
	IDParam
	ProductID  *string      `json:"productId" validate:"omitempty,min=1"`
	Status     *OrderStatus `json:"status" validate:"omitempty,oneof=pending paid shipped delivered cancelled"`
	Quantity   *int         `json:"quantity" validate:"omitempty,min=1"`
	BuyerEmail *string      `json:"buyerEmail" validate:"omitempty,email"`
}

func (r *EditOrderRequest) Validate() error {
	return validateStruct(r)
}

// DeleteOrderRequest is bound from DELETE /orders/:id.
type DeleteOrderRequest struct {
	IDParam
}
