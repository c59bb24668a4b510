package service

import (
	"context"

	"github.com/deppfellow/invoice-dashboard/internal/lib/money"
	"github.com/deppfellow/invoice-dashboard/internal/model"
	"golang.org/x/sync/errgroup"
)

// LatestInvoicesLimit is how many invoices the dashboard overview shows.
const LatestInvoicesLimit = 5

type DashboardService struct {
	invoices  InvoiceStore
	customers CustomerStore
	revenue   RevenueStore
	money     *money.Formatter
}

func NewDashboardService(invoices InvoiceStore, customers CustomerStore, revenue RevenueStore, formatter *money.Formatter) *DashboardService {
	return &DashboardService{
		invoices:  invoices,
		customers: customers,
		revenue:   revenue,
		money:     formatter,
	}
}

// FetchRevenue returns every revenue row, unmodified.
func (s *DashboardService) FetchRevenue(ctx context.Context) ([]model.Revenue, error) {
	rows, err := s.revenue.All(ctx)
	if err != nil {
		return nil, dataAccessError(ctx, "fetch_revenue", "Failed to fetch revenue data.", err)
	}
	if rows == nil {
		rows = []model.Revenue{}
	}
	return rows, nil
}

// FetchLatestInvoices returns the five most recently dated invoices with
// their customer and a formatted amount. Invoices sharing a date have no
// defined order among themselves.
func (s *DashboardService) FetchLatestInvoices(ctx context.Context) ([]model.LatestInvoice, error) {
	rows, err := s.invoices.Latest(ctx, LatestInvoicesLimit)
	if err != nil {
		return nil, dataAccessError(ctx, "fetch_latest_invoices", "Failed to fetch the latest invoices.", err)
	}

	latest := make([]model.LatestInvoice, 0, len(rows))
	for _, row := range rows {
		latest = append(latest, model.LatestInvoice{
			ID:       row.ID,
			Name:     row.Name,
			ImageURL: row.ImageURL,
			Email:    row.Email,
			Amount:   s.money.Format(row.Amount),
		})
	}
	return latest, nil
}

// FetchCardData runs the four summary queries concurrently. The figures
// are not read from a single snapshot.
func (s *DashboardService) FetchCardData(ctx context.Context) (*model.CardData, error) {
	var invoiceCount, customerCount, paid, pending int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		invoiceCount, err = s.invoices.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		customerCount, err = s.customers.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		paid, err = s.invoices.SumAmountByStatus(gctx, model.StatusPaid)
		return err
	})
	g.Go(func() (err error) {
		pending, err = s.invoices.SumAmountByStatus(gctx, model.StatusPending)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, dataAccessError(ctx, "fetch_card_data", "Failed to fetch card data.", err)
	}

	return &model.CardData{
		NumberOfCustomers:    customerCount,
		NumberOfInvoices:     invoiceCount,
		TotalPaidInvoices:    s.money.Format(paid),
		TotalPendingInvoices: s.money.Format(pending),
	}, nil
}
