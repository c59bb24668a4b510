// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"context"

	"github.com/deppfellow/invoice-dashboard/internal/errs"
	"github.com/deppfellow/invoice-dashboard/internal/logger"
	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/deppfellow/invoice-dashboard/internal/repository"
	"github.com/deppfellow/invoice-dashboard/internal/sqlerr"
)

// InvoiceStore is the invoice persistence used by the services.
type InvoiceStore interface {
	Latest(ctx context.Context, limit uint64) ([]repository.InvoiceWithCustomer, error)
	Filtered(ctx context.Context, query string, limit, offset uint64) ([]repository.InvoiceWithCustomer, error)
	CountFiltered(ctx context.Context, query string) (int64, error)
	GetByID(ctx context.Context, id string) (*model.Invoice, error)
	Insert(ctx context.Context, inv *model.Invoice) error
	Update(ctx context.Context, id, customerID string, amount int64, status model.Status) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
	SumAmountByStatus(ctx context.Context, status model.Status) (int64, error)
}

// CustomerStore is the customer persistence used by the services.
type CustomerStore interface {
	All(ctx context.Context) ([]model.CustomerField, error)
	Filtered(ctx context.Context, query string) ([]repository.CustomerAggregate, error)
	Count(ctx context.Context) (int64, error)
}

// RevenueStore is the revenue persistence used by the services.
type RevenueStore interface {
	All(ctx context.Context) ([]model.Revenue, error)
}

// dataAccessError logs a failed store call and hides it behind the
// operation's client-facing message.
func dataAccessError(ctx context.Context, op, message string, err error) error {
	logger.FromContext(ctx).Error().
		Err(err).
		Str("operation", op).
		Msg("database error")
	return errs.NewDataAccessError(op, message, err)
}

// persistError is dataAccessError for writes: input the store rejected
// (unknown customer, malformed id) becomes a 400 instead.
func persistError(ctx context.Context, op, message string, err error) error {
	if sqlerr.IsClientError(err) {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("operation", op).
			Msg("store rejected input")
		return sqlerr.HandleError(err)
	}
	return dataAccessError(ctx, op, message, err)
}

// malformedID reports whether the store refused id itself, which for a
// lookup means no row can match.
func malformedID(err error) bool {
	return sqlerr.ErrCode(err) == sqlerr.InvalidText
}
