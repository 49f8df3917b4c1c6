package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/workforcepro/terceirizacao-api/internal/api/handler"
	"github.com/workforcepro/terceirizacao-api/internal/api/metrics"
	"github.com/workforcepro/terceirizacao-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation failures as 422 with one entry per rejected field.
//   - Maps domain.ErrNotFound to 404.
//   - Logs any other error and returns 500 carrying its description.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			metrics.RequestErrorsTotal.WithLabelValues("validation").Inc()
			_ = c.JSON(http.StatusUnprocessableEntity, handler.ValidationResponse{
				Error:  domain.ErrValidation.Error(),
				Detail: ve.Issues,
			})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, handler.ErrorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bad body, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		metrics.RequestErrorsTotal.WithLabelValues("http").Inc()
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	if errors.Is(err, domain.ErrNotFound) {
		metrics.RequestErrorsTotal.WithLabelValues("not_found").Inc()
		return http.StatusNotFound, err.Error()
	}

	metrics.RequestErrorsTotal.WithLabelValues("internal").Inc()
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, err.Error()
}
