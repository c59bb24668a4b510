// Package handler is the HTTP entry point for business logic after the
// router.
//
// It binds requests, validates input through the validation package and
// calls the service layer. Every typed endpoint runs through the pipeline
// in base.go.
package handler

import (
	"github.com/deppfellow/invoice-dashboard/internal/server"
	"github.com/deppfellow/invoice-dashboard/internal/service"
)

// Handlers groups every HTTP handler so router setup passes one value
// around.
type Handlers struct {
	Health    *HealthHandler
	OpenAPI   *OpenAPIHandler
	Dashboard *DashboardHandler
	Invoices  *InvoiceHandler
	Customers *CustomerHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(s),
		OpenAPI:   NewOpenAPIHandler(s),
		Dashboard: NewDashboardHandler(s, services.Dashboard),
		Invoices:  NewInvoiceHandler(s, services.Invoices),
		Customers: NewCustomerHandler(s, services.Customers),
	}
}
