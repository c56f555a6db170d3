package handler

import (
	"errors"
	"net/http"

	"carmarket-service/internal/catalog"
	"carmarket-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CatalogHandler serves the denormalized catalog read path
type CatalogHandler struct {
	deps *Deps
}

func NewCatalogHandler(deps *Deps) *CatalogHandler {
	return &CatalogHandler{deps: deps}
}

// Detail handles the public car detail lookup by model_year_id and
// optional trim_id. The trim-level row takes precedence when both are
// supplied.
func (h *CatalogHandler) Detail(c echo.Context) error {
	log := logger.FromContext(c)

	modelYearID := c.QueryParam("model_year_id")
	var trimID *string
	if v := c.QueryParam("trim_id"); v != "" {
		trimID = &v
	}

	detail, err := h.deps.Lookup.CarDetailByYearAndTrim(c.Request().Context(), modelYearID, trimID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrMissingIdentifier):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, catalog.ErrCarNotFound):
			log.Warn("Car detail not found",
				zap.String("model_year_id", modelYearID))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Car not found"})
		default:
			log.Error("Failed to look up car detail",
				zap.String("model_year_id", modelYearID),
				zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve car detail"})
		}
	}

	return c.JSON(http.StatusOK, detail)
}
