package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// invoiceSearchColumns are matched by the listing's free-text filter.
var invoiceSearchColumns = []string{
	"customers.name",
	"customers.email",
	"invoices.amount::text",
	"invoices.date::text",
	"invoices.status",
}

// InvoiceWithCustomer is an invoice joined with its customer's fields.
type InvoiceWithCustomer struct {
	ID         string    `db:"id"`
	CustomerID string    `db:"customer_id"`
	Amount     int64     `db:"amount"`
	Date       time.Time `db:"date"`
	Status     string    `db:"status"`
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	ImageURL   string    `db:"image_url"`
}

type InvoiceRepository struct {
	db DB
}

func NewInvoiceRepository(db DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func joinedInvoices() squirrel.SelectBuilder {
	return psql.
		Select(
			"invoices.id",
			"invoices.customer_id",
			"invoices.amount",
			"invoices.date",
			"invoices.status",
			"customers.name",
			"customers.email",
			"customers.image_url",
		).
		From("invoices").
		Join("customers ON invoices.customer_id = customers.id")
}

func withSearch(b squirrel.SelectBuilder, query string) squirrel.SelectBuilder {
	if query == "" {
		return b
	}
	return b.Where(anyILike(containsPattern(query), invoiceSearchColumns...))
}

// Latest returns the limit most recently dated invoices. Rows sharing a
// date come back in whatever order the store yields them.
func (r *InvoiceRepository) Latest(ctx context.Context, limit uint64) ([]InvoiceWithCustomer, error) {
	sql, args, err := joinedInvoices().
		OrderBy("invoices.date DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest invoices select: %w", err)
	}

	var rows []InvoiceWithCustomer
	if err := pgxscan.Select(ctx, r.db, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("query latest invoices: %w", err)
	}
	return rows, nil
}

// Filtered returns one page of invoices matching query, newest first.
// The id tie-break gives a total order so consecutive pages never
// overlap or skip rows.
func (r *InvoiceRepository) Filtered(ctx context.Context, query string, limit, offset uint64) ([]InvoiceWithCustomer, error) {
	sql, args, err := withSearch(joinedInvoices(), query).
		OrderBy("invoices.date DESC", "invoices.id").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build filtered invoices select: %w", err)
	}

	var rows []InvoiceWithCustomer
	if err := pgxscan.Select(ctx, r.db, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("query filtered invoices: %w", err)
	}
	return rows, nil
}

// CountFiltered counts the invoices Filtered would page through.
func (r *InvoiceRepository) CountFiltered(ctx context.Context, query string) (int64, error) {
	b := psql.Select("COUNT(*)").
		From("invoices").
		Join("customers ON invoices.customer_id = customers.id")

	n, err := queryInt64(ctx, r.db, withSearch(b, query))
	if err != nil {
		return 0, fmt.Errorf("count filtered invoices: %w", err)
	}
	return n, nil
}

// GetByID returns ErrNotFound when no invoice has the id.
func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*model.Invoice, error) {
	sql, args, err := psql.
		Select("id", "customer_id", "amount", "status", "date").
		From("invoices").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build invoice select: %w", err)
	}

	var inv model.Invoice
	if err := pgxscan.Get(ctx, r.db, &inv, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query invoice: %w", err)
	}
	return &inv, nil
}

func (r *InvoiceRepository) Insert(ctx context.Context, inv *model.Invoice) error {
	if inv == nil {
		return errors.New("invoice is required")
	}
	sql, args, err := psql.
		Insert("invoices").
		Columns("id", "customer_id", "amount", "status", "date").
		Values(inv.ID, inv.CustomerID, inv.Amount, string(inv.Status), inv.Date).
		ToSql()
	if err != nil {
		return fmt.Errorf("build invoice insert: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update rewrites the customer, amount and status of invoice id and
// reports how many rows changed. Id and date are never touched.
func (r *InvoiceRepository) Update(ctx context.Context, id, customerID string, amount int64, status model.Status) (int64, error) {
	sql, args, err := psql.
		Update("invoices").
		Set("customer_id", customerID).
		Set("amount", amount).
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build invoice update: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("update invoice: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete removes invoice id and reports how many rows were removed.
func (r *InvoiceRepository) Delete(ctx context.Context, id string) (int64, error) {
	sql, args, err := psql.
		Delete("invoices").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build invoice delete: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("delete invoice: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *InvoiceRepository) Count(ctx context.Context) (int64, error) {
	n, err := queryInt64(ctx, r.db, psql.Select("COUNT(*)").From("invoices"))
	if err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}

// SumAmountByStatus totals the minor-unit amounts of invoices in status;
// 0 when there are none.
func (r *InvoiceRepository) SumAmountByStatus(ctx context.Context, status model.Status) (int64, error) {
	b := psql.Select("COALESCE(SUM(amount), 0)::bigint").
		From("invoices").
		Where(squirrel.Eq{"status": string(status)})

	n, err := queryInt64(ctx, r.db, b)
	if err != nil {
		return 0, fmt.Errorf("sum %s invoices: %w", status, err)
	}
	return n, nil
}
