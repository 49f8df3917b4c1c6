package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/workforcepro/terceirizacao-api/internal/api/metrics"
	"github.com/workforcepro/terceirizacao-api/internal/core/ports"
)

// Greeting is the body of GET /api/.
const Greeting = "Sistema de Terceirização de Serviços"

// Root handles GET /api/.
//
// @Summary      Service greeting
// @Tags         meta
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/ [get]
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: Greeting})
}

// DashboardHandler handles GET /api/dashboard.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats handles GET /api/dashboard.
//
// @Summary      Headline counts for today
// @Description  Six independent counts; they are not a consistent snapshot.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  domain.DashboardStats
// @Failure      500  {object}  ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	start := time.Now()
	stats, err := h.service.Stats(c.Request().Context())
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.DashboardDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
