package apperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/news-digest/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGlobalErrorHandler_StatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", apperr.NewValidation("bad"), http.StatusBadRequest},
		{"authentication", apperr.NewAuthentication("invalid token"), http.StatusUnauthorized},
		{"not found", apperr.NewNotFound("article not found"), http.StatusNotFound},
		{"conflict", apperr.NewConflict("username taken", nil), http.StatusConflict},
		{"duplicate", apperr.NewDuplicateArticle("u", nil), http.StatusConflict},
		{"summarization", apperr.NewSummarization("bad summary", "x"), http.StatusUnprocessableEntity},
		{"network", apperr.NewNetwork("upstream down"), http.StatusBadGateway},
		{"echo", echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"), http.StatusMethodNotAllowed},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}

	e := echo.New()
	handler := apperr.GlobalErrorHandler()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			handler(tc.err, c)

			assert.Equal(t, tc.code, rec.Code)
		})
	}
}
