package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/deppfellow/invoice-dashboard/internal/repository"
)

// memStore is an in-memory InvoiceStore, CustomerStore and RevenueStore
// with the same matching and ordering rules as the SQL repositories.
type memStore struct {
	mu        sync.Mutex
	customers map[string]model.Customer
	invoices  map[string]model.Invoice
	revenue   []model.Revenue
	failures  map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		customers: map[string]model.Customer{},
		invoices:  map[string]model.Invoice{},
		failures:  map[string]error{},
	}
}

func (m *memStore) addCustomer(c model.Customer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[c.ID] = c
}

func (m *memStore) addInvoice(inv model.Invoice) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invoices[inv.ID] = inv
}

func (m *memStore) invoice(id string) (model.Invoice, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inv, ok := m.invoices[id]
	return inv, ok
}

func (m *memStore) fail(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[op] = err
}

func (m *memStore) failure(op string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failures[op]
}

func (m *memStore) joined() []repository.InvoiceWithCustomer {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := make([]repository.InvoiceWithCustomer, 0, len(m.invoices))
	for _, inv := range m.invoices {
		c := m.customers[inv.CustomerID]
		rows = append(rows, repository.InvoiceWithCustomer{
			ID:         inv.ID,
			CustomerID: inv.CustomerID,
			Amount:     inv.Amount,
			Date:       inv.Date,
			Status:     string(inv.Status),
			Name:       c.Name,
			Email:      c.Email,
			ImageURL:   c.ImageURL,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.After(rows[j].Date)
		}
		return rows[i].ID < rows[j].ID
	})
	return rows
}

func contains(value, query string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(query))
}

func (m *memStore) matching(query string) []repository.InvoiceWithCustomer {
	var out []repository.InvoiceWithCustomer
	for _, row := range m.joined() {
		if query == "" ||
			contains(row.Name, query) ||
			contains(row.Email, query) ||
			contains(strconv.FormatInt(row.Amount, 10), query) ||
			contains(row.Date.Format(model.DateLayout), query) ||
			contains(row.Status, query) {
			out = append(out, row)
		}
	}
	return out
}

func (m *memStore) Latest(_ context.Context, limit uint64) ([]repository.InvoiceWithCustomer, error) {
	if err := m.failure("Latest"); err != nil {
		return nil, err
	}
	rows := m.joined()
	if uint64(len(rows)) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (m *memStore) Filtered(_ context.Context, query string, limit, offset uint64) ([]repository.InvoiceWithCustomer, error) {
	if err := m.failure("Filtered"); err != nil {
		return nil, err
	}
	rows := m.matching(query)
	if offset >= uint64(len(rows)) {
		return nil, nil
	}
	rows = rows[offset:]
	if uint64(len(rows)) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (m *memStore) CountFiltered(_ context.Context, query string) (int64, error) {
	if err := m.failure("CountFiltered"); err != nil {
		return 0, err
	}
	return int64(len(m.matching(query))), nil
}

func (m *memStore) GetByID(_ context.Context, id string) (*model.Invoice, error) {
	if err := m.failure("GetByID"); err != nil {
		return nil, err
	}
	inv, ok := m.invoice(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &inv, nil
}

func (m *memStore) Insert(_ context.Context, inv *model.Invoice) error {
	if err := m.failure("Insert"); err != nil {
		return err
	}
	m.addInvoice(*inv)
	return nil
}

func (m *memStore) Update(_ context.Context, id, customerID string, amount int64, status model.Status) (int64, error) {
	if err := m.failure("Update"); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	inv, ok := m.invoices[id]
	if !ok {
		return 0, nil
	}
	inv.CustomerID = customerID
	inv.Amount = amount
	inv.Status = status
	m.invoices[id] = inv
	return 1, nil
}

func (m *memStore) Delete(_ context.Context, id string) (int64, error) {
	if err := m.failure("Delete"); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.invoices[id]; !ok {
		return 0, nil
	}
	delete(m.invoices, id)
	return 1, nil
}

func (m *memStore) Count(_ context.Context) (int64, error) {
	if err := m.failure("Count"); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.invoices)), nil
}

func (m *memStore) SumAmountByStatus(_ context.Context, status model.Status) (int64, error) {
	if err := m.failure("SumAmountByStatus"); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var sum int64
	for _, inv := range m.invoices {
		if inv.Status == status {
			sum += inv.Amount
		}
	}
	return sum, nil
}

// customerStore exposes the customer side of memStore; its Count and
// Filtered differ from the invoice methods of the same name.
type customerStore struct {
	*memStore
}

func (c customerStore) All(_ context.Context) ([]model.CustomerField, error) {
	if err := c.failure("Customers.All"); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.CustomerField, 0, len(c.customers))
	for _, cu := range c.customers {
		out = append(out, model.CustomerField{ID: cu.ID, Name: cu.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (c customerStore) Filtered(_ context.Context, query string) ([]repository.CustomerAggregate, error) {
	if err := c.failure("Customers.Filtered"); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []repository.CustomerAggregate
	for _, cu := range c.customers {
		if query != "" && !contains(cu.Name, query) && !contains(cu.Email, query) {
			continue
		}
		agg := repository.CustomerAggregate{ID: cu.ID, Name: cu.Name, Email: cu.Email, ImageURL: cu.ImageURL}
		for _, inv := range c.invoices {
			if inv.CustomerID != cu.ID {
				continue
			}
			agg.TotalInvoices++
			switch inv.Status {
			case model.StatusPending:
				agg.TotalPending += inv.Amount
			case model.StatusPaid:
				agg.TotalPaid += inv.Amount
			}
		}
		out = append(out, agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (c customerStore) Count(_ context.Context) (int64, error) {
	if err := c.failure("Customers.Count"); err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return int64(len(c.customers)), nil
}

type revenueStore struct {
	*memStore
}

func (r revenueStore) All(_ context.Context) ([]model.Revenue, error) {
	if err := r.failure("Revenue.All"); err != nil {
		return nil, err
	}
	return r.revenue, nil
}

// recordingInvalidator remembers every path it was asked to invalidate.
type recordingInvalidator struct {
	mu    sync.Mutex
	paths []string
	err   error
}

func (r *recordingInvalidator) Invalidate(_ context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	return r.err
}

func (r *recordingInvalidator) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}
