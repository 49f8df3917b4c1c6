package ports

import (
	"context"

	"github.com/workforcepro/terceirizacao-api/internal/core/domain"
)

// DashboardService computes the aggregate counts shown on the dashboard.
type DashboardService interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}
