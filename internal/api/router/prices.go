package router

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

type PriceSource interface {
	Necessities(ctx context.Context, category, commodity string) (json.RawMessage, error)
}

type PriceRouter struct {
	e      *echo.Echo
	source PriceSource
}

func NewPriceRouter(e *echo.Echo, source PriceSource) *PriceRouter {
	return &PriceRouter{
		e:      e,
		source: source,
	}
}

func (r *PriceRouter) Bind() {
	r.e.GET("/api/v1/prices/necessities-price", r.necessities)
}

// necessities godoc
// @Summary Necessities price index
// @Description Proxies the government necessities price API; the body is passed through unchanged.
// @Tags prices
// @Produce json
// @Param category query string false "Category name"
// @Param commodity query string false "Commodity name"
// @Success 200 {object} object
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/prices/necessities-price [get]
func (r *PriceRouter) necessities(c echo.Context) error {
	body, err := r.source.Necessities(c.Request().Context(), c.QueryParam("category"), c.QueryParam("commodity"))
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, body)
}
