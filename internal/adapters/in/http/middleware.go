package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"dinner/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// requestValidator rejects /api/v1 requests that do not match the OpenAPI document.
// Requests for routes the document does not know fall through to echo's router.
func requestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !strings.HasPrefix(req.URL.Path, apiPrefix+"/") {
				return next(c)
			}

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			if err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, firstLine(err.Error()))
			}

			return next(c)
		}
	}, nil
}

// requestLatency observes every request in the latency histogram, labelled by route template.
func requestLatency(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			elapsed := float64(time.Since(start).Microseconds()) / 1000
			m.LatencyMS.
				WithLabelValues(c.Request().Method, route, strconv.Itoa(c.Response().Status)).
				Observe(elapsed)
			return nil
		}
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
