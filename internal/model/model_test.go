package model

import (
	"errors"
	"testing"

	"github.com/deppfellow/storefront/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()

	var validationErrors validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrors), "expected validator errors, got %v", err)

	names := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		names = append(names, e.Field())
	}
	return names
}

func TestListRequestsDefaults(t *testing.T) {
	products := NewListProductsRequest()
	assert.Equal(t, 0, products.Offset)
	assert.Equal(t, 25, products.Limit)
	assert.Empty(t, products.Tag)

	orders := NewListOrdersRequest()
	assert.Equal(t, DefaultPage(), orders.Page)
	assert.NoError(t, orders.Validate())
}

func TestCreateProductRequest_Validate(t *testing.T) {
	valid := &CreateProductRequest{
		Name:  "Desk lamp",
		Price: ptr(decimal.RequireFromString("19.99")),
		Tags:  []string{"lighting"},
	}
	assert.NoError(t, valid.Validate())

	missing := &CreateProductRequest{}
	assert.ElementsMatch(t, []string{"name", "price"}, fieldNames(t, missing.Validate()))

	emptyTag := &CreateProductRequest{Name: "Lamp", Price: ptr(decimal.Zero), Tags: []string{""}}
	assert.Equal(t, []string{"tags[0]"}, fieldNames(t, emptyTag.Validate()))
}

func TestCreateProductRequest_NegativePrice(t *testing.T) {
	req := &CreateProductRequest{Name: "Lamp", Price: ptr(decimal.NewFromInt(-1))}

	var custom validation.CustomValidationErrors
	require.True(t, errors.As(req.Validate(), &custom))
	assert.Equal(t, "price", custom[0].Field)
}

func TestEditProductRequest_Validate(t *testing.T) {
	assert.NoError(t, (&EditProductRequest{}).Validate())
	assert.NoError(t, (&EditProductRequest{Name: ptr("New name")}).Validate())

	assert.Equal(t, []string{"name"}, fieldNames(t, (&EditProductRequest{Name: ptr("")}).Validate()))
	assert.Error(t, (&EditProductRequest{Price: ptr(decimal.NewFromFloat(-0.5))}).Validate())
}

func TestCreateOrderRequest_Validate(t *testing.T) {
	assert.NoError(t, (&CreateOrderRequest{ProductID: "p-1"}).Validate())

	invalid := &CreateOrderRequest{
		Status:     ptr(OrderStatus("lost")),
		Quantity:   ptr(0),
		BuyerEmail: ptr("not-an-email"),
	}
	assert.ElementsMatch(t,
		[]string{"productId", "status", "quantity", "buyerEmail"},
		fieldNames(t, invalid.Validate()),
	)
}

func TestEditOrderRequest_Validate(t *testing.T) {
	assert.NoError(t, (&EditOrderRequest{Status: ptr(OrderStatusShipped)}).Validate())
	assert.Equal(t, []string{"status"}, fieldNames(t, (&EditOrderRequest{Status: ptr(OrderStatus("x"))}).Validate()))
}
