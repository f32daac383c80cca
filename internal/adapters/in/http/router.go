package http

import (
	"net/http"

	"dinner/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance: the /api/v1 operations of si validated against doc,
// plus /health, /metrics and the Swagger UI.
func NewRouter(si ServerInterface, doc *openapi3.T, m *metrics.Metrics) (*echo.Echo, error) {
	validator, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpErrorHandler

	e.Use(requestLatency(m))
	e.Use(middleware.Recover())
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterHandlers(e, si)

	return e, nil
}
