package handler

import (
	"github.com/deppfellow/invoice-dashboard/internal/model"
	"github.com/deppfellow/invoice-dashboard/internal/server"
	"github.com/deppfellow/invoice-dashboard/internal/service"
	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the overview page: revenue chart, latest
// invoices and the summary cards.
type DashboardHandler struct {
	Handler
	dashboard *service.DashboardService
}

func NewDashboardHandler(s *server.Server, dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		Handler:   NewHandler(s),
		dashboard: dashboard,
	}
}

func (h *DashboardHandler) Revenue(c echo.Context, _ *model.NoParams) ([]model.Revenue, error) {
	return h.dashboard.FetchRevenue(c.Request().Context())
}

func (h *DashboardHandler) LatestInvoices(c echo.Context, _ *model.NoParams) ([]model.LatestInvoice, error) {
	return h.dashboard.FetchLatestInvoices(c.Request().Context())
}

func (h *DashboardHandler) Cards(c echo.Context, _ *model.NoParams) (*model.CardData, error) {
	return h.dashboard.FetchCardData(c.Request().Context())
}
