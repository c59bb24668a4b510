package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// TxStarter is satisfied by *pgxpool.Pool and by pgxmock pools.
type TxStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// SeedResult counts the rows written by Seed. Rows that already existed
// are not counted.
type SeedResult struct {
	Customers int64
	Invoices  int64
	Revenue   int64
}

// Seed loads the placeholder customers, invoices and revenue in a single
// transaction. It is idempotent: existing rows are left untouched.
func Seed(ctx context.Context, db TxStarter, logger *zerolog.Logger) (SeedResult, error) {
	var res SeedResult

	tx, err := db.Begin(ctx)
	if err != nil {
		return res, fmt.Errorf("begin seed transaction: %w", err)
	}

	if err := seedTables(ctx, tx, &res); err != nil {
		_ = tx.Rollback(ctx)
		return SeedResult{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return SeedResult{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	logger.Info().
		Int64("customers", res.Customers).
		Int64("invoices", res.Invoices).
		Int64("revenue", res.Revenue).
		Msg("seeded placeholder data")

	return res, nil
}

func seedTables(ctx context.Context, tx pgx.Tx, res *SeedResult) error {
	var err error

	customers := psql.Insert("customers").Columns("id", "name", "email", "image_url")
	for _, c := range seedCustomers {
		customers = customers.Values(c.id, c.name, c.email, c.imageURL)
	}
	if res.Customers, err = execInsert(ctx, tx, customers.Suffix("ON CONFLICT (id) DO NOTHING")); err != nil {
		return fmt.Errorf("seed customers: %w", err)
	}

	// Invoice ids are generated, so invoices are only seeded into an empty table.
	var existing int64
	if err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM invoices").Scan(&existing); err != nil {
		return fmt.Errorf("count invoices: %w", err)
	}
	if existing == 0 {
		invoices := psql.Insert("invoices").Columns("customer_id", "amount", "status", "date")
		for _, inv := range seedInvoices {
			date, err := time.Parse(time.DateOnly, inv.date)
			if err != nil {
				return fmt.Errorf("seed invoice date %q: %w", inv.date, err)
			}
			invoices = invoices.Values(inv.customerID, inv.amount, inv.status, date)
		}
		if res.Invoices, err = execInsert(ctx, tx, invoices); err != nil {
			return fmt.Errorf("seed invoices: %w", err)
		}
	}

	revenue := psql.Insert("revenue").Columns("month", "revenue")
	for _, r := range seedRevenue {
		revenue = revenue.Values(r.month, r.revenue)
	}
	if res.Revenue, err = execInsert(ctx, tx, revenue.Suffix("ON CONFLICT (month) DO NOTHING")); err != nil {
		return fmt.Errorf("seed revenue: %w", err)
	}

	return nil
}

func execInsert(ctx context.Context, tx pgx.Tx, b squirrel.InsertBuilder) (int64, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
