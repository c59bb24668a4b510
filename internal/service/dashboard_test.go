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

func newDashboardService(store *memStore) *DashboardService {
	return NewDashboardService(store, customerStore{store}, revenueStore{store}, money.DefaultFormatter())
}

func TestDashboardService_FetchCardData(t *testing.T) {
	ctx := context.Background()

	t.Run("Should total paid and pending amounts", func(t *testing.T) {
		store := newMemStore()
		store.addCustomer(model.Customer{ID: "c1", Name: "Evil Rabbit"})
		store.addCustomer(model.Customer{ID: "c2", Name: "Amy Burns"})
		store.addInvoice(model.Invoice{ID: "i1", CustomerID: "c1", Amount: 1000, Status: model.StatusPaid, Date: day(2023, 1, 1)})
		store.addInvoice(model.Invoice{ID: "i2", CustomerID: "c2", Amount: 2000, Status: model.StatusPaid, Date: day(2023, 1, 2)})
		store.addInvoice(model.Invoice{ID: "i3", CustomerID: "c2", Amount: 500, Status: model.StatusPending, Date: day(2023, 1, 3)})

		data, err := newDashboardService(store).FetchCardData(ctx)
		require.NoError(t, err)
		assert.Equal(t, &model.CardData{
			NumberOfCustomers:    2,
			NumberOfInvoices:     3,
			TotalPaidInvoices:    "$30.00",
			TotalPendingInvoices: "$5.00",
		}, data)
	})

	t.Run("Should count customers even without invoices", func(t *testing.T) {
		store := newMemStore()
		store.addCustomer(model.Customer{ID: "c1", Name: "Evil Rabbit"})

		data, err := newDashboardService(store).FetchCardData(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), data.NumberOfCustomers)
		assert.Zero(t, data.NumberOfInvoices)
		assert.Equal(t, "$0.00", data.TotalPaidInvoices)
	})

	t.Run("Should fail as a whole when any sub-query fails", func(t *testing.T) {
		store := newMemStore()
		store.fail("Customers.Count", errors.New("boom"))

		data, err := newDashboardService(store).FetchCardData(ctx)
		assert.Nil(t, data)
		var dae *errs.DataAccessError
		require.ErrorAs(t, err, &dae)
		assert.Equal(t, "Failed to fetch card data.", dae.Message)
	})
}

func TestDashboardService_FetchLatestInvoices(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return the five newest with formatted amounts", func(t *testing.T) {
		store := newMemStore()
		store.addCustomer(model.Customer{ID: "c1", Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"})
		for i := 1; i <= 7; i++ {
			store.addInvoice(model.Invoice{
				ID: string(rune('a' + i)), CustomerID: "c1", Amount: int64(i * 100),
				Status: model.StatusPaid, Date: day(2023, 1, i),
			})
		}

		latest, err := newDashboardService(store).FetchLatestInvoices(ctx)
		require.NoError(t, err)
		require.Len(t, latest, LatestInvoicesLimit)
		assert.Equal(t, "$7.00", latest[0].Amount)
		assert.Equal(t, "$3.00", latest[4].Amount)
		assert.Equal(t, "Evil Rabbit", latest[0].Name)
		assert.Equal(t, "/customers/evil-rabbit.png", latest[0].ImageURL)
		assert.Equal(t, "evil@rabbit.com", latest[0].Email)
	})

	t.Run("Should report store failures", func(t *testing.T) {
		store := newMemStore()
		store.fail("Latest", errors.New("boom"))

		_, err := newDashboardService(store).FetchLatestInvoices(ctx)
		var dae *errs.DataAccessError
		require.ErrorAs(t, err, &dae)
		assert.Equal(t, "Failed to fetch the latest invoices.", dae.Message)
	})
}

func TestDashboardService_FetchRevenue(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return rows unmodified", func(t *testing.T) {
		store := newMemStore()
		store.revenue = []model.Revenue{{Month: "Jan", Revenue: 2000}, {Month: "Feb", Revenue: 1800}}

		rows, err := newDashboardService(store).FetchRevenue(ctx)
		require.NoError(t, err)
		assert.Equal(t, store.revenue, rows)
	})

	t.Run("Should return an empty list rather than nil", func(t *testing.T) {
		rows, err := newDashboardService(newMemStore()).FetchRevenue(ctx)
		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})

	t.Run("Should report store failures", func(t *testing.T) {
		store := newMemStore()
		store.fail("Revenue.All", errors.New("boom"))

		_, err := newDashboardService(store).FetchRevenue(ctx)
		var dae *errs.DataAccessError
		require.ErrorAs(t, err, &dae)
		assert.Equal(t, "Failed to fetch revenue data.", dae.Message)
	})
}
