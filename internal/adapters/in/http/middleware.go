package http

import (
	"log/slog"
	"strconv"
	"time"

	"marketplace/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

const internalErrorKey = "internal_error"

// RequestLogger writes one structured line per request. Internal errors
// hidden from the client are attached to the line.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			attrs := []any{
				slog.String("method", req.Method),
				slog.String("route", c.Path()),
				slog.String("uri", req.RequestURI),
				slog.Int("status", c.Response().Status),
				slog.Duration("latency", time.Since(start)),
				slog.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			}

			if internal, ok := c.Get(internalErrorKey).(error); ok {
				logger.ErrorContext(req.Context(), "request failed", append(attrs, slog.Any("error", internal))...)
				return nil
			}
			if err != nil {
				logger.WarnContext(req.Context(), "request failed", append(attrs, slog.Any("error", err))...)
				return nil
			}

			logger.InfoContext(req.Context(), "request handled", attrs...)
			return nil
		}
	}
}

// Metrics records request counts and latencies per route.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			metrics.RecordHTTPRequest(
				c.Request().Method,
				c.Path(),
				strconv.Itoa(c.Response().Status),
				time.Since(start).Seconds(),
			)
			return nil
		}
	}
}
