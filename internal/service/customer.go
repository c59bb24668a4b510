package service

import (
	"context"

	"github.com/deppfellow/invoice-dashboard/internal/lib/money"
	"github.com/deppfellow/invoice-dashboard/internal/model"
)

type CustomerService struct {
	customers CustomerStore
	money     *money.Formatter
}

func NewCustomerService(customers CustomerStore, formatter *money.Formatter) *CustomerService {
	return &CustomerService{customers: customers, money: formatter}
}

// FetchCustomers lists id/name pairs ordered by name.
func (s *CustomerService) FetchCustomers(ctx context.Context) ([]model.CustomerField, error) {
	rows, err := s.customers.All(ctx)
	if err != nil {
		return nil, dataAccessError(ctx, "fetch_customers", "Failed to fetch all customers.", err)
	}
	if rows == nil {
		rows = []model.CustomerField{}
	}
	return rows, nil
}

// FetchFilteredCustomers returns the customer table for query with
// formatted pending and paid totals.
func (s *CustomerService) FetchFilteredCustomers(ctx context.Context, query string) ([]model.CustomersTableRow, error) {
	rows, err := s.customers.Filtered(ctx, query)
	if err != nil {
		return nil, dataAccessError(ctx, "fetch_filtered_customers", "Failed to fetch customer table.", err)
	}

	table := make([]model.CustomersTableRow, 0, len(rows))
	for _, row := range rows {
		table = append(table, model.CustomersTableRow{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			ImageURL:      row.ImageURL,
			TotalInvoices: row.TotalInvoices,
			TotalPending:  s.money.Format(row.TotalPending),
			TotalPaid:     s.money.Format(row.TotalPaid),
		})
	}
	return table, nil
}
