package service

import (
	"fmt"

	"github.com/deppfellow/invoice-dashboard/internal/lib/money"
	"github.com/deppfellow/invoice-dashboard/internal/lib/revalidate"
	"github.com/deppfellow/invoice-dashboard/internal/repository"
	"github.com/deppfellow/invoice-dashboard/internal/server"
)

type Services struct {
	Dashboard *DashboardService
	Invoices  *InvoiceService
	Customers *CustomerService
}

// NewService wires every service over repos, using the display and
// revalidation settings from the server config.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	formatter, err := money.NewFormatter(s.Config.Display.Locale, s.Config.Display.CurrencySymbol)
	if err != nil {
		return nil, fmt.Errorf("invalid display config: %w", err)
	}

	invalidator, err := revalidate.New(s.Config.Revalidate, s.Redis, s.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to set up view invalidation: %w", err)
	}

	return &Services{
		Dashboard: NewDashboardService(repos.Invoices, repos.Customers, repos.Revenue, formatter),
		Invoices:  NewInvoiceService(repos.Invoices, invalidator, formatter),
		Customers: NewCustomerService(repos.Customers, formatter),
	}, nil
}
