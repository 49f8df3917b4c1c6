package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workforcepro/terceirizacao-api/internal/api/metrics"
	"github.com/workforcepro/terceirizacao-api/internal/core/domain"
	"github.com/workforcepro/terceirizacao-api/internal/core/ports"
)

const (
	// HeaderIdempotencyKey lets a client retry a POST without creating twice.
	HeaderIdempotencyKey = "Idempotency-Key"
	// HeaderIdempotentReplayed is set on responses served from the replay cache.
	HeaderIdempotentReplayed = "Idempotent-Replayed"
)

// createRecord binds and validates a Req body, converts it to the create shape
// and stores it through svc. The stored record is returned with 200.
func createRecord[Req, F, R any](c echo.Context, col domain.Collection, svc ports.RecordService[F, R], toFields func(*Req) F) error {
	var req Req
	if err := bindCreate(c, &req); err != nil {
		return err
	}

	key := c.Request().Header.Get(HeaderIdempotencyKey)
	rec, replayed, err := svc.Create(c.Request().Context(), key, toFields(&req))
	if err != nil {
		return err
	}

	if replayed {
		metrics.IdempotentReplaysTotal.WithLabelValues(string(col)).Inc()
		c.Response().Header().Set(HeaderIdempotentReplayed, "true")
	} else {
		metrics.RecordsCreatedTotal.WithLabelValues(string(col)).Inc()
	}
	return c.JSON(http.StatusOK, rec)
}

func listRecords[F, R any](c echo.Context, svc ports.RecordService[F, R]) error {
	recs, err := svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recs)
}
