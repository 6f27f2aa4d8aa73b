// Package repository handles all interactions with the database.
//
// It contains the SQL for products and orders and the methods that run it
// over the pgx pool, keeping SQL out of the service layer.
package repository

import (
	"strconv"
	"strings"

	"github.com/deppfellow/storefront/internal/model"
	"github.com/deppfellow/storefront/internal/server"
	"github.com/google/uuid"
)

// Repositories is the container for every repository.
type Repositories struct {
	Product *ProductRepository
	Order   *OrderRepository
}

func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Product: NewProductRepository(s.DB.Pool),
		Order:   NewOrderRepository(s.DB.Pool),
	}
}

// validID reports whether id can name a row. Ids are uuids; anything else
// is treated as absent rather than sent to Postgres.
func validID(id string) bool {
	return uuid.Validate(id) == nil
}

// pageArgs clamps a page to values Postgres accepts for OFFSET and LIMIT.
func pageArgs(p model.Page) (offset, limit int) {
	return max(p.Offset, 0), max(p.Limit, 0)
}

// whereBuilder collects AND-ed conditions with positional arguments.
type whereBuilder struct {
	conds []string
	args  []any
}

// add appends a condition; every "?" in cond is replaced with the next
// positional placeholder bound to arg.
func (w *whereBuilder) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.ReplaceAll(cond, "?", "$"+strconv.Itoa(len(w.args))))
}

// next returns the placeholder for an argument appended after the conditions.
func (w *whereBuilder) next(arg any) string {
	w.args = append(w.args, arg)
	return "$" + strconv.Itoa(len(w.args))
}

func (w *whereBuilder) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}
