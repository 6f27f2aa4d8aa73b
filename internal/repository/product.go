package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/storefront/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the query surface shared by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const productColumns = `id::text AS id, name, description, price, tags, created_at, updated_at`

type ProductRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func buildListProductsQuery(f model.ProductFilter) (string, []any) {
	var w whereBuilder
	if f.Tag != "" {
		w.add("? = ANY(tags)", f.Tag)
	}

	offset, limit := pageArgs(f.Page)
	query := `SELECT ` + productColumns + ` FROM products` + w.clause() +
		` ORDER BY created_at, id OFFSET ` + w.next(offset) + ` LIMIT ` + w.next(limit)

	return query, w.args
}

// List returns a page of products, oldest first. It never returns nil.
func (r *ProductRepository) List(ctx context.Context, f model.ProductFilter) ([]model.Product, error) {
	query, args := buildListProductsQuery(f)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		return nil, fmt.Errorf("failed to collect products: %w", err)
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

// Get returns the product, or nil when it does not exist.
func (r *ProductRepository) Get(ctx context.Context, id string) (*model.Product, error) {
	if !validID(id) {
		return nil, nil
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.one(ctx, "get product", query, id)
}

func (r *ProductRepository) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	query := `INSERT INTO products (id, name, description, price, tags)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + productColumns

	return r.one(ctx, "create product", query, uuid.NewString(), req.Name, req.Description, req.Price, tags)
}

// Edit applies the non-nil fields of req and returns the updated product,
// or nil when it does not exist.
func (r *ProductRepository) Edit(ctx context.Context, id string, req *model.EditProductRequest) (*model.Product, error) {
	if !validID(id) {
		return nil, nil
	}

	query := `UPDATE products SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			price = COALESCE($4, price),
			tags = COALESCE($5, tags),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + productColumns

	return r.one(ctx, "edit product", query, id, req.Name, req.Description, req.Price, req.Tags)
}

// Destroy deletes the product and its orders and reports whether a row went away.
func (r *ProductRepository) Destroy(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete product: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// one runs a single-row query and maps pgx.ErrNoRows to (nil, nil).
func (r *ProductRepository) one(ctx context.Context, op, query string, args ...any) (*model.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}

	product, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Product])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	return product, nil
}
