package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Message, "title": "validation error"})
			return
		}

		var ae *AuthenticationError
		if errors.As(err, &ae) {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			_ = c.JSON(http.StatusUnauthorized, map[string]string{"error": ae.Message})
			return
		}

		var nf *NotFoundError
		if errors.As(err, &nf) {
			_ = c.JSON(http.StatusNotFound, map[string]string{"error": nf.Message})
			return
		}

		var ce *ConflictError
		if errors.As(err, &ce) {
			_ = c.JSON(http.StatusConflict, map[string]string{"error": ce.Message})
			return
		}

		var de *DuplicateArticleError
		if errors.As(err, &de) {
			_ = c.JSON(http.StatusConflict, map[string]string{"error": de.Error()})
			return
		}

		var se *SummarizationError
		if errors.As(err, &se) {
			_ = c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": se.Message})
			return
		}

		var xe *ExtractionError
		if errors.As(err, &xe) {
			_ = c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": xe.Error()})
			return
		}

		var ne *NetworkError
		if errors.As(err, &ne) {
			slog.Warn("Upstream call failed", "error", err)
			_ = c.JSON(http.StatusBadGateway, map[string]string{"error": ne.Message})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
