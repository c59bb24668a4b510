package handler

import (
	"github.com/deppfellow/invoice-dashboard/internal/errs"
	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/deppfellow/invoice-dashboard/internal/server"
	"github.com/deppfellow/invoice-dashboard/internal/service"
	"github.com/labstack/echo/v4"
)

// InvoiceHandler serves the invoice listing and the create, edit and
// delete actions.
type InvoiceHandler struct {
	Handler
	invoices *service.InvoiceService
}

func NewInvoiceHandler(s *server.Server, invoices *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		Handler:  NewHandler(s),
		invoices: invoices,
	}
}

// List returns one page of invoices matching ?query=. A missing page is
// the first one.
func (h *InvoiceHandler) List(c echo.Context, req *model.InvoiceSearch) ([]model.InvoicesTableRow, error) {
	return h.invoices.FetchFilteredInvoices(c.Request().Context(), req.Query, req.Page)
}

func (h *InvoiceHandler) Pages(c echo.Context, req *model.InvoiceSearch) (*model.InvoicePages, error) {
	total, err := h.invoices.FetchInvoicesPages(c.Request().Context(), req.Query)
	if err != nil {
		return nil, err
	}
	return &model.InvoicePages{TotalPages: total}, nil
}

// Get prefills the edit form. It is the one read that answers 404.
func (h *InvoiceHandler) Get(c echo.Context, req *model.InvoiceIDParam) (*model.InvoiceForm, error) {
	form, err := h.invoices.FetchInvoiceByID(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, errs.NewNotFoundError("Invoice not found", true, nil)
	}
	return form, nil
}

func (h *InvoiceHandler) Create(c echo.Context, req *model.InvoiceInput) (*service.MutationResult, error) {
	return h.invoices.CreateInvoice(c.Request().Context(), req)
}

func (h *InvoiceHandler) Update(c echo.Context, req *model.UpdateInvoiceInput) (*service.MutationResult, error) {
	return h.invoices.UpdateInvoice(c.Request().Context(), req.ID, &req.InvoiceInput)
}

func (h *InvoiceHandler) Delete(c echo.Context, req *model.InvoiceIDParam) error {
	return h.invoices.DeleteInvoice(c.Request().Context(), req.ID)
}
