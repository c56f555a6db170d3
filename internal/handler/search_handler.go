package handler

import (
	"errors"
	"net/http"
	"strconv"

	"carmarket-service/internal/searchsync"
	"carmarket-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const maxPerPage = 250

// SearchHandler exposes catalog search and the administrative resync
// trigger
type SearchHandler struct {
	deps *Deps
}

func NewSearchHandler(deps *Deps) *SearchHandler {
	return &SearchHandler{deps: deps}
}

// SearchCarModels handles free-text search against the catalog index
func (h *SearchHandler) SearchCarModels(c echo.Context) error {
	log := logger.FromContext(c)

	query := c.QueryParam("query")
	page := queryParamInt(c, "page", 1)
	perPage := queryParamInt(c, "per_page", 10)
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	results, err := h.deps.Pipeline.SearchCarModels(c.Request().Context(), query, page, perPage)
	if err != nil {
		log.Error("Failed to search car models", zap.String("query", query), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to search car models"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    results,
	})
}

// Sync handles the administrative full-resync trigger. It runs the
// whole pipeline synchronously and reports the first fatal error.
func (h *SearchHandler) Sync(c echo.Context) error {
	log := logger.FromContext(c)
	log.Info("Catalog sync triggered")

	if err := h.deps.Pipeline.RunFull(c.Request().Context()); err != nil {
		if errors.Is(err, searchsync.ErrSyncInProgress) {
			log.Warn("Catalog sync rejected, already running")
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		log.Error("Catalog sync failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Catalog sync completed successfully",
	})
}

func queryParamInt(c echo.Context, name string, defaultValue int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return defaultValue
	}
	return value
}
