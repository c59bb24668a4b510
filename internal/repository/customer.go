package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// CustomerAggregate is a customer with totals over its invoices.
type CustomerAggregate struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	Email         string `db:"email"`
	ImageURL      string `db:"image_url"`
	TotalInvoices int64  `db:"total_invoices"`
	TotalPending  int64  `db:"total_pending"`
	TotalPaid     int64  `db:"total_paid"`
}

type CustomerRepository struct {
	db DB
}

func NewCustomerRepository(db DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// All lists every customer's id and name, alphabetically.
func (r *CustomerRepository) All(ctx context.Context) ([]model.CustomerField, error) {
	sql, args, err := psql.
		Select("id", "name").
		From("customers").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build customers select: %w", err)
	}

	var rows []model.CustomerField
	if err := pgxscan.Select(ctx, r.db, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	return rows, nil
}

// Filtered returns customers whose name or email contains query, with
// their invoice count and pending/paid totals. Customers without invoices
// are included with zero totals.
func (r *CustomerRepository) Filtered(ctx context.Context, query string) ([]CustomerAggregate, error) {
	b := psql.
		Select(
			"customers.id",
			"customers.name",
			"customers.email",
			"customers.image_url",
			"COUNT(invoices.id) AS total_invoices",
			"COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0)::bigint AS total_pending",
			"COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0)::bigint AS total_paid",
		).
		From("customers").
		LeftJoin("invoices ON customers.id = invoices.customer_id").
		GroupBy("customers.id", "customers.name", "customers.email", "customers.image_url").
		OrderBy("customers.name ASC")
	if query != "" {
		b = b.Where(anyILike(containsPattern(query), "customers.name", "customers.email"))
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build customer table select: %w", err)
	}

	var rows []CustomerAggregate
	if err := pgxscan.Select(ctx, r.db, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("query customer table: %w", err)
	}
	return rows, nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	n, err := queryInt64(ctx, r.db, psql.Select("COUNT(*)").From("customers"))
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}
