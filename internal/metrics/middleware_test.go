package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/news-digest/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_UsesRouteTemplateAndFinalStatus(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	e.Use(Middleware())
	e.GET("/mw-test/:id", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	e.GET("/mw-fail", func(c echo.Context) error { return echo.NewHTTPError(http.StatusTeapot) })
	e.GET("/mw-auth", func(c echo.Context) error { return apperr.NewAuthentication("not authenticated") })
	e.GET("/mw-missing", func(c echo.Context) error { return apperr.NewNotFound("article not found") })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/mw-test/1", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/mw-test/2", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/mw-fail", nil))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mw-auth", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mw-missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := scrape(t)
	assert.Contains(t, body, `http_requests_total{method="GET",path="/mw-test/:id",status_code="204"} 2`)
	assert.Contains(t, body, `http_requests_total{method="GET",path="/mw-fail",status_code="418"} 1`)
	assert.Contains(t, body, `http_requests_total{method="GET",path="/mw-auth",status_code="401"} 1`)
	assert.Contains(t, body, `http_requests_total{method="GET",path="/mw-missing",status_code="404"} 1`)
}

func TestMiddleware_StatusAlreadyWrittenByInnerErrorHandling(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	e.Use(Middleware())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		HandleError:   true,
		LogStatus:     true,
		LogValuesFunc: func(echo.Context, middleware.RequestLoggerValues) error { return nil },
	}))
	e.POST("/mw-conflict", func(c echo.Context) error { return apperr.NewConflict("username taken", nil) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mw-conflict", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)

	assert.Contains(t, scrape(t), `http_requests_total{method="POST",path="/mw-conflict",status_code="409"} 1`)
}
