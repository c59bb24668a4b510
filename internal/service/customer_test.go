package service

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/invoice-dashboard/internal/errs"
	"github.com/deppfellow/invoice-dashboard/internal/lib/money"
	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerService(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.addCustomer(model.Customer{ID: "c1", Name: "Evil Rabbit", Email: "evil@rabbit.com"})
	store.addCustomer(model.Customer{ID: "c2", Name: "Amy Burns", Email: "amy@burns.com"})
	store.addCustomer(model.Customer{ID: "c3", Name: "Lee Robinson", Email: "lee@robinson.com"})
	store.addInvoice(model.Invoice{ID: "i1", CustomerID: "c1", Amount: 1000, Status: model.StatusPaid, Date: day(2023, 1, 1)})
	store.addInvoice(model.Invoice{ID: "i2", CustomerID: "c1", Amount: 250, Status: model.StatusPending, Date: day(2023, 1, 2)})
	svc := NewCustomerService(customerStore{store}, money.DefaultFormatter())

	t.Run("Should list customers by name", func(t *testing.T) {
		rows, err := svc.FetchCustomers(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"Amy Burns", "Evil Rabbit", "Lee Robinson"}, []string{rows[0].Name, rows[1].Name, rows[2].Name})
	})

	t.Run("Should aggregate and format customer totals", func(t *testing.T) {
		rows, err := svc.FetchFilteredCustomers(ctx, "RABBIT")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, model.CustomersTableRow{
			ID:            "c1",
			Name:          "Evil Rabbit",
			Email:         "evil@rabbit.com",
			TotalInvoices: 2,
			TotalPending:  "$2.50",
			TotalPaid:     "$10.00",
		}, rows[0])
	})

	t.Run("Should include customers without invoices", func(t *testing.T) {
		rows, err := svc.FetchFilteredCustomers(ctx, "robinson.com")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Zero(t, rows[0].TotalInvoices)
		assert.Equal(t, "$0.00", rows[0].TotalPaid)
	})

	t.Run("Should report store failures", func(t *testing.T) {
		broken := newMemStore()
		broken.fail("Customers.All", errors.New("boom"))
		broken.fail("Customers.Filtered", errors.New("boom"))
		failing := NewCustomerService(customerStore{broken}, money.DefaultFormatter())

		_, err := failing.FetchCustomers(ctx)
		var dae *errs.DataAccessError
		require.ErrorAs(t, err, &dae)
		assert.Equal(t, "Failed to fetch all customers.", dae.Message)

		_, err = failing.FetchFilteredCustomers(ctx, "")
		require.ErrorAs(t, err, &dae)
		assert.Equal(t, "Failed to fetch customer table.", dae.Message)
	})
}
