package router

import (
	"net/http"

	"github.com/deppfellow/invoice-dashboard/internal/handler"
	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/labstack/echo/v4"
)

func registerAPIRoutes(g *echo.Group, h *handler.Handlers) {
	dashboard := g.Group("/dashboard")
	dashboard.GET("/revenue", handler.Handle(h.Dashboard.Handler, h.Dashboard.Revenue, http.StatusOK, &model.NoParams{}))
	dashboard.GET("/latest-invoices", handler.Handle(h.Dashboard.Handler, h.Dashboard.LatestInvoices, http.StatusOK, &model.NoParams{}))
	dashboard.GET("/cards", handler.Handle(h.Dashboard.Handler, h.Dashboard.Cards, http.StatusOK, &model.NoParams{}))

	invoices := g.Group("/invoices")
	invoices.GET("", handler.Handle(h.Invoices.Handler, h.Invoices.List, http.StatusOK, &model.InvoiceSearch{}))
	invoices.GET("/pages", handler.Handle(h.Invoices.Handler, h.Invoices.Pages, http.StatusOK, &model.InvoiceSearch{}))
	invoices.GET("/:id", handler.Handle(h.Invoices.Handler, h.Invoices.Get, http.StatusOK, &model.InvoiceIDParam{}))
	invoices.POST("", handler.HandleRedirect(h.Invoices.Handler, h.Invoices.Create, &model.InvoiceInput{}))

	// HTML forms cannot send PUT, so the edit form posts to the same path.
	update := handler.HandleRedirect(h.Invoices.Handler, h.Invoices.Update, &model.UpdateInvoiceInput{})
	invoices.PUT("/:id", update)
	invoices.POST("/:id", update)
	invoices.DELETE("/:id", handler.HandleNoContent(h.Invoices.Handler, h.Invoices.Delete, http.StatusNoContent, &model.InvoiceIDParam{}))

	customers := g.Group("/customers")
	customers.GET("", handler.Handle(h.Customers.Handler, h.Customers.List, http.StatusOK, &model.NoParams{}))
	customers.GET("/table", handler.Handle(h.Customers.Handler, h.Customers.Table, http.StatusOK, &model.CustomerSearch{}))
}
