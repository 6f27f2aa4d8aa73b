package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/storefront/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id::text AS id, product_id::text AS product_id, status, quantity, buyer_email, created_at, updated_at`

type OrderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func buildListOrdersQuery(f model.OrderFilter) (string, []any) {
	var w whereBuilder
	if f.ProductID != "" {
		// compared as text so a malformed id matches nothing instead of failing the cast
		w.add("product_id::text = ?", f.ProductID)
	}
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}

	offset, limit := pageArgs(f.Page)
	query := `SELECT ` + orderColumns + ` FROM orders` + w.clause() +
		` ORDER BY created_at, id OFFSET ` + w.next(offset) + ` LIMIT ` + w.next(limit)

	return query, w.args
}

// List returns a page of orders, oldest first. It never returns nil.
func (r *OrderRepository) List(ctx context.Context, f model.OrderFilter) ([]model.Order, error) {
	query, args := buildListOrdersQuery(f)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Order])
	if err != nil {
		return nil, fmt.Errorf("failed to collect orders: %w", err)
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

// Get returns the order, or nil when it does not exist.
func (r *OrderRepository) Get(ctx context.Context, id string) (*model.Order, error) {
	if !validID(id) {
		return nil, nil
	}

	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return r.one(ctx, "get order", query, id)
}

// Create inserts an order, defaulting status to pending and quantity to 1.
func (r *OrderRepository) Create(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error) {
	status := model.OrderStatusPending
	if req.Status != nil {
		status = *req.Status
	}
	quantity := model.DefaultOrderQuantity
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	query := `INSERT INTO orders (id, product_id, status, quantity, buyer_email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + orderColumns

	return r.one(ctx, "create order", query, uuid.NewString(), req.ProductID, string(status), quantity, req.BuyerEmail)
}

// Edit applies the non-nil fields of req and returns the updated order,
// or nil when it does not exist.
func (r *OrderRepository) Edit(ctx context.Context, id string, req *model.EditOrderRequest) (*model.Order, error) {
	if !validID(id) {
		return nil, nil
	}

	var status *string
	if req.Status != nil {
		s := string(*req.Status)
		status = &s
	}

	query := `UPDATE orders SET
			product_id = COALESCE($2::uuid, product_id),
			status = COALESCE($3, status),
			quantity = COALESCE($4, quantity),
			buyer_email = COALESCE($5, buyer_email),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + orderColumns

	return r.one(ctx, "edit order", query, id, req.ProductID, status, req.Quantity, req.BuyerEmail)
}

// Destroy deletes the order and returns it, or nil when it did not exist.
func (r *OrderRepository) Destroy(ctx context.Context, id string) (*model.Order, error) {
	if !validID(id) {
		return nil, nil
	}

	query := `DELETE FROM orders WHERE id = $1 RETURNING ` + orderColumns
	return r.one(ctx, "delete order", query, id)
}

func (r *OrderRepository) one(ctx context.Context, op, query string, args ...any) (*model.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}

	order, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Order])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	return order, nil
}
