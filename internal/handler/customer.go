package handler

import (
	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/deppfellow/invoice-dashboard/internal/server"
	"github.com/deppfellow/invoice-dashboard/internal/service"
	"github.com/labstack/echo/v4"
)

type CustomerHandler struct {
	Handler
	customers *service.CustomerService
}

func NewCustomerHandler(s *server.Server, customers *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		Handler:   NewHandler(s),
		customers: customers,
	}
}

// List feeds the customer picker of the invoice forms.
func (h *CustomerHandler) List(c echo.Context, _ *model.NoParams) ([]model.CustomerField, error) {
	return h.customers.FetchCustomers(c.Request().Context())
}

// Table is the customers page, filtered by ?query=.
func (h *CustomerHandler) Table(c echo.Context, req *model.CustomerSearch) ([]model.CustomersTableRow, error) {
	return h.customers.FetchFilteredCustomers(c.Request().Context(), req.Query)
}
