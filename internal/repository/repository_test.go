package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var joinedColumns = []string{"id", "customer_id", "amount", "date", "status", "name", "email", "image_url"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)
	return mockPool
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%acme%", containsPattern("acme"))
	assert.Equal(t, `%50\%%`, containsPattern("50%"))
	assert.Equal(t, `%a\_b%`, containsPattern("a_b"))
	assert.Equal(t, `%c:\\temp%`, containsPattern(`c:\temp`))
	assert.Equal(t, "%%", containsPattern(""))
}

func TestInvoiceRepository_Latest(t *testing.T) {
	t.Run("Should join customers and order by date", func(t *testing.T) {
		mockPool := newMock(t)
		repo := NewInvoiceRepository(mockPool)
		day := time.Date(2023, 6, 9, 0, 0, 0, 0, time.UTC)

		mockPool.ExpectQuery("SELECT (.+) FROM invoices JOIN customers ON invoices.customer_id = customers.id ORDER BY invoices.date DESC LIMIT 5").
			WillReturnRows(mockPool.NewRows(joinedColumns).
				AddRow("i1", "c1", int64(1550), day, "paid", "Evil Rabbit", "evil@rabbit.com", "/customers/evil-rabbit.png"))

		rows, err := repo.Latest(context.Background(), 5)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "i1", rows[0].ID)
		assert.Equal(t, int64(1550), rows[0].Amount)
		assert.Equal(t, "Evil Rabbit", rows[0].Name)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should wrap store failures", func(t *testing.T) {
		mockPool := newMock(t)
		repo := NewInvoiceRepository(mockPool)

		mockPool.ExpectQuery("SELECT (.+) FROM invoices").WillReturnError(errors.New("connection reset"))

		_, err := repo.Latest(context.Background(), 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query latest invoices")
	})
}

func TestInvoiceRepository_Filtered(t *testing.T) {
	t.Run("Should match every searchable column and page with offset", func(t *testing.T) {
		mockPool := newMock(t)
		repo := NewInvoiceRepository(mockPool)

		mockPool.ExpectQuery(
			"SELECT (.+) FROM invoices JOIN customers ON invoices.customer_id = customers.id " +
				"WHERE \\(customers.name ILIKE \\$1 OR customers.email ILIKE \\$2 OR invoices.amount::text ILIKE \\$3 " +
				"OR invoices.date::text ILIKE \\$4 OR invoices.status ILIKE \\$5\\) " +
				"ORDER BY invoices.date DESC, invoices.id LIMIT 6 OFFSET 12",
		).
			WithArgs("%acme%", "%acme%", "%acme%", "%acme%", "%acme%").
			WillReturnRows(mockPool.NewRows(joinedColumns))

		rows, err := repo.Filtered(context.Background(), "acme", 6, 12)
		require.NoError(t, err)
		assert.Empty(t, rows)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should skip the predicate for an empty query", func(t *testing.T) {
		mockPool := newMock(t)
		repo := NewInvoiceRepository(mockPool)

		mockPool.ExpectQuery("JOIN customers ON invoices.customer_id = customers.id ORDER BY").
			WillReturnRows(mockPool.NewRows(joinedColumns))

		_, err := repo.Filtered(context.Background(), "", 6, 0)
		require.NoError(t, err)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestInvoiceRepository_CountFiltered(t *testing.T) {
	mockPool := newMock(t)
	repo := NewInvoiceRepository(mockPool)

	mockPool.ExpectQuery("SELECT COUNT\\(\\*\\) FROM invoices JOIN customers (.+) WHERE \\(customers.name ILIKE").
		WithArgs("%acme%", "%acme%", "%acme%", "%acme%", "%acme%").
		WillReturnRows(mockPool.NewRows([]string{"count"}).AddRow(int64(13)))

	n, err := repo.CountFiltered(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, int64(13), n)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestInvoiceRepository_GetByID(t *testing.T) {
	t.Run("Should return the stored invoice", func(t *testing.T) {
		mockPool := newMock(t)
		repo := NewInvoiceRepository(mockPool)
		day := time.Date(2022, 12, 6, 0, 0, 0, 0, time.UTC)

		mockPool.ExpectQuery("SELECT id, customer_id, amount, status, date FROM invoices WHERE id = \\$1").
			WithArgs("i1").
			WillReturnRows(mockPool.NewRows([]string{"id", "customer_id", "amount", "status", "date"}).
				AddRow("i1", "c1", int64(15795), model.StatusPending, day))

		inv, err := repo.GetByID(context.Background(), "i1")
		require.NoError(t, err)
		assert.Equal(t, "c1", inv.CustomerID)
		assert.Equal(t, int64(15795), inv.Amount)
		assert.Equal(t, model.StatusPending, inv.Status)
		assert.Equal(t, day, inv.Date)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should return ErrNotFound for a missing id", func(t *testing.T) {
		mockPool := newMock(t)
		repo := NewInvoiceRepository(mockPool)

		mockPool.ExpectQuery("FROM invoices WHERE id = \\$1").
			WithArgs("missing").
			WillReturnRows(mockPool.NewRows([]string{"id", "customer_id", "amount", "status", "date"}))

		_, err := repo.GetByID(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestInvoiceRepository_Writes(t *testing.T) {
	t.Run("Should insert every column", func(t *testing.T) {
		mockPool := newMock(t)
		repo := NewInvoiceRepository(mockPool)
		day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

		mockPool.ExpectExec("INSERT INTO invoices \\(id,customer_id,amount,status,date\\) VALUES \\(\\$1,\\$2,\\$3,\\$4,\\$5\\)").
			WithArgs("i1", "c1", int64(1550), "pending", day).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Insert(context.Background(), &model.Invoice{
			ID: "i1", CustomerID: "c1", Amount: 1550, Status: model.StatusPending, Date: day,
		})
		require.NoError(t, err)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should update only customer, amount and status", func(t *testing.T) {
		mockPool := newMock(t)
		repo := NewInvoiceRepository(mockPool)

		mockPool.ExpectExec("UPDATE invoices SET customer_id = \\$1, amount = \\$2, status = \\$3 WHERE id = \\$4").
			WithArgs("c2", int64(2000), "paid", "i1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		n, err := repo.Update(context.Background(), "i1", "c2", 2000, model.StatusPaid)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should report zero rows for a missing delete", func(t *testing.T) {
		mockPool := newMock(t)
		repo := NewInvoiceRepository(mockPool)

		mockPool.ExpectExec("DELETE FROM invoices WHERE id = \\$1").
			WithArgs("missing").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		n, err := repo.Delete(context.Background(), "missing")
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestInvoiceRepository_Aggregates(t *testing.T) {
	mockPool := newMock(t)
	repo := NewInvoiceRepository(mockPool)

	mockPool.ExpectQuery("SELECT COUNT\\(\\*\\) FROM invoices").
		WillReturnRows(mockPool.NewRows([]string{"count"}).AddRow(int64(3)))
	mockPool.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\)::bigint FROM invoices WHERE status = \\$1").
		WithArgs("paid").
		WillReturnRows(mockPool.NewRows([]string{"coalesce"}).AddRow(int64(3000)))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	sum, err := repo.SumAmountByStatus(context.Background(), model.StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), sum)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestCustomerRepository(t *testing.T) {
	t.Run("Should list customers by name", func(t *testing.T) {
		mockPool := newMock(t)
		repo := NewCustomerRepository(mockPool)

		mockPool.ExpectQuery("SELECT id, name FROM customers ORDER BY name ASC").
			WillReturnRows(mockPool.NewRows([]string{"id", "name"}).
				AddRow("c2", "Amy Burns").
				AddRow("c1", "Evil Rabbit"))

		rows, err := repo.All(context.Background())
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Amy Burns", rows[0].Name)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should aggregate invoices per matching customer", func(t *testing.T) {
		mockPool := newMock(t)
		repo := NewCustomerRepository(mockPool)

		mockPool.ExpectQuery(
			"SELECT (.+) FROM customers LEFT JOIN invoices ON customers.id = invoices.customer_id " +
				"WHERE \\(customers.name ILIKE \\$1 OR customers.email ILIKE \\$2\\) " +
				"GROUP BY customers.id, customers.name, customers.email, customers.image_url " +
				"ORDER BY customers.name ASC",
		).
			WithArgs("%rabbit%", "%rabbit%").
			WillReturnRows(mockPool.NewRows([]string{"id", "name", "email", "image_url", "total_invoices", "total_pending", "total_paid"}).
				AddRow("c1", "Evil Rabbit", "evil@rabbit.com", "", int64(2), int64(500), int64(1000)))

		rows, err := repo.Filtered(context.Background(), "rabbit")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, int64(2), rows[0].TotalInvoices)
		assert.Equal(t, int64(500), rows[0].TotalPending)
		assert.Equal(t, int64(1000), rows[0].TotalPaid)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should count customers, not invoices", func(t *testing.T) {
		mockPool := newMock(t)
		repo := NewCustomerRepository(mockPool)

		mockPool.ExpectQuery("SELECT COUNT\\(\\*\\) FROM customers").
			WillReturnRows(mockPool.NewRows([]string{"count"}).AddRow(int64(6)))

		n, err := repo.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(6), n)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestRevenueRepository_All(t *testing.T) {
	mockPool := newMock(t)
	repo := NewRevenueRepository(mockPool)

	mockPool.ExpectQuery("SELECT month, revenue FROM revenue").
		WillReturnRows(mockPool.NewRows([]string{"month", "revenue"}).
			AddRow("Jan", int64(2000)).
			AddRow("Feb", int64(1800)))

	rows, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Revenue{{Month: "Jan", Revenue: 2000}, {Month: "Feb", Revenue: 1800}}, rows)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}
