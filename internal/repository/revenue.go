package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/georgysavva/scany/v2/pgxscan"
)

type RevenueRepository struct {
	db DB
}

func NewRevenueRepository(db DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

// All returns every revenue row as stored.
func (r *RevenueRepository) All(ctx context.Context) ([]model.Revenue, error) {
	sql, args, err := psql.Select("month", "revenue").From("revenue").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build revenue select: %w", err)
	}

	var rows []model.Revenue
	if err := pgxscan.Select(ctx, r.db, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("query revenue: %w", err)
	}
	return rows, nil
}
