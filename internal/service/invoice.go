package service

import (
	"context"
	"errors"
	"time"

	"github.com/deppfellow/invoice-dashboard/internal/lib/money"
	"github.com/deppfellow/invoice-dashboard/internal/lib/revalidate"
	"github.com/deppfellow/invoice-dashboard/internal/logger"
	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/deppfellow/invoice-dashboard/internal/repository"
	"github.com/deppfellow/invoice-dashboard/internal/validation"
	"github.com/google/uuid"
)

// ItemsPerPage is the invoice listing page size.
const ItemsPerPage = 6

// MutationResult is returned by successful invoice writes. RedirectTo is
// the view the caller should navigate to next.
type MutationResult struct {
	InvoiceID  string `json:"invoice_id"`
	RedirectTo string `json:"redirect_to"`
}

// Location is the view to redirect to.
func (r *MutationResult) Location() string {
	if r == nil {
		return ""
	}
	return r.RedirectTo
}

type InvoiceService struct {
	invoices    InvoiceStore
	invalidator revalidate.Invalidator
	money       *money.Formatter

	now   func() time.Time
	newID func() string
}

func NewInvoiceService(invoices InvoiceStore, invalidator revalidate.Invalidator, formatter *money.Formatter) *InvoiceService {
	return &InvoiceService{
		invoices:    invoices,
		invalidator: invalidator,
		money:       formatter,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// FetchFilteredInvoices returns page (1-based) of the invoices matching
// query, newest first. Pages below 1 are treated as page 1.
func (s *InvoiceService) FetchFilteredInvoices(ctx context.Context, query string, page int) ([]model.InvoicesTableRow, error) {
	if page < 1 {
		page = 1
	}
	offset := uint64(page-1) * ItemsPerPage

	rows, err := s.invoices.Filtered(ctx, query, ItemsPerPage, offset)
	if err != nil {
		return nil, dataAccessError(ctx, "fetch_filtered_invoices", "Failed to fetch invoices.", err)
	}

	table := make([]model.InvoicesTableRow, 0, len(rows))
	for _, row := range rows {
		table = append(table, model.InvoicesTableRow{
			ID:         row.ID,
			CustomerID: row.CustomerID,
			Name:       row.Name,
			Email:      row.Email,
			ImageURL:   row.ImageURL,
			Date:       row.Date.Format(model.DateLayout),
			Amount:     row.Amount,
			Status:     model.Status(row.Status),
		})
	}
	return table, nil
}

// FetchInvoicesPages returns ceil(matching invoices / ItemsPerPage).
func (s *InvoiceService) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	n, err := s.invoices.CountFiltered(ctx, query)
	if err != nil {
		return 0, dataAccessError(ctx, "fetch_invoices_pages", "Failed to fetch total number of invoices.", err)
	}
	return int((n + ItemsPerPage - 1) / ItemsPerPage), nil
}

// FetchInvoiceByID returns the edit form for invoice id, or nil when no
// such invoice exists.
func (s *InvoiceService) FetchInvoiceByID(ctx context.Context, id string) (*model.InvoiceForm, error) {
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || malformedID(err) {
			return nil, nil
		}
		return nil, dataAccessError(ctx, "fetch_invoice", "Failed to fetch invoice.", err)
	}

	return &model.InvoiceForm{
		ID:          inv.ID,
		CustomerID:  inv.CustomerID,
		AmountCents: inv.Amount,
		Amount:      money.FormatPlain(inv.Amount),
		Status:      inv.Status,
	}, nil
}

// CreateInvoice validates in, stores it as a new invoice dated today and
// refreshes the invoice listing.
//
// Nothing is stored when validation fails. When the store fails the error
// is returned and the listing is left alone.
func (s *InvoiceService) CreateInvoice(ctx context.Context, in *model.InvoiceInput) (*MutationResult, error) {
	if in == nil {
		in = &model.InvoiceInput{}
	}
	if err := validation.Validate(in); err != nil {
		return nil, err
	}

	amount, err := money.ParseMinorUnits(in.Amount)
	if err != nil {
		return nil, err
	}

	inv := &model.Invoice{
		ID:         s.newID(),
		CustomerID: in.CustomerID,
		Amount:     amount,
		Status:     in.Status,
		Date:       s.today(),
	}

	if err := s.invoices.Insert(ctx, inv); err != nil {
		return nil, persistError(ctx, "create_invoice", "Failed to create invoice.", err)
	}

	logger.FromContext(ctx).Info().
		Str("invoice_id", inv.ID).
		Int64("amount", inv.Amount).
		Msg("invoice created")

	s.invalidate(ctx, revalidate.InvoicesPath)

	return &MutationResult{InvoiceID: inv.ID, RedirectTo: revalidate.InvoicesPath}, nil
}

// UpdateInvoice replaces the customer, amount and status of invoice id.
// Its id and date never change. Updating a missing invoice changes
// nothing and is not an error.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id string, in *model.InvoiceInput) (*MutationResult, error) {
	if in == nil {
		in = &model.InvoiceInput{}
	}
	if err := validation.Validate(&model.UpdateInvoiceInput{ID: id, InvoiceInput: *in}); err != nil {
		return nil, err
	}

	amount, err := money.ParseMinorUnits(in.Amount)
	if err != nil {
		return nil, err
	}

	updated, err := s.invoices.Update(ctx, id, in.CustomerID, amount, in.Status)
	if err != nil {
		return nil, persistError(ctx, "update_invoice", "Failed to update invoice.", err)
	}

	if updated > 0 {
		s.invalidate(ctx, revalidate.InvoicesPath)
	} else {
		logger.FromContext(ctx).Debug().Str("invoice_id", id).Msg("no invoice to update")
	}

	return &MutationResult{InvoiceID: id, RedirectTo: revalidate.InvoicesPath}, nil
}

// DeleteInvoice removes invoice id. Deleting a missing invoice is a no-op.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id string) error {
	deleted, err := s.invoices.Delete(ctx, id)
	if err != nil {
		if malformedID(err) {
			return nil
		}
		return dataAccessError(ctx, "delete_invoice", "Failed to delete invoice.", err)
	}

	if deleted > 0 {
		s.invalidate(ctx, revalidate.InvoicesPath)
	}
	return nil
}

// invalidate signals that path is stale. The write already happened, so a
// failed signal is only logged.
func (s *InvoiceService) invalidate(ctx context.Context, path string) {
	if err := s.invalidator.Invalidate(ctx, path); err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("path", path).
			Msg("failed to invalidate view")
	}
}

// today is the current UTC calendar date at midnight.
func (s *InvoiceService) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
