package middleware

import (
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/labstack/echo/v4"

	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/reqcontext"
)

// Logger emits one access line per request after the handler returns,
// carrying the correlation identifiers set by Context so an analysis can
// be traced across logs, errors, and emitted events.
func Logger(logger ectologger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			start := time.Now()
			if err = next(c); err != nil {
				c.Error(err)
			}

			ctx := c.Request().Context()
			fields := map[string]interface{}{
				"request_id":    reqcontext.GetRequestID(ctx),
				"method":        c.Request().Method,
				"route":         c.Path(),
				"uri":           c.Request().RequestURI,
				"status":        c.Response().Status,
				"remote_ip":     c.RealIP(),
				"response_time": time.Since(start).String(),
				"response_size": c.Response().Size,
			}
			if tenantID := reqcontext.GetTenantID(ctx); tenantID != "" {
				fields["tenant_id"] = tenantID
			}

			logger.WithContext(ctx).WithFields(fields).Info("request completed")

			return nil
		}
	}
}
