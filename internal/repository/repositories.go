package repository

import (
	"github.com/deppfellow/invoice-dashboard/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Invoices  *InvoiceRepository
	Customers *CustomerRepository
	Revenue   *RevenueRepository
}

// NewRepositories builds every repository over the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.Pool)
}

// New builds every repository over db.
func New(db DB) *Repositories {
	return &Repositories{
		Invoices:  NewInvoiceRepository(db),
		Customers: NewCustomerRepository(db),
		Revenue:   NewRevenueRepository(db),
	}
}
