package handler

import (
	"net/http"

	"carmarket-service/internal/model"
	"carmarket-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// BrandHandler serves the catalog brand list consumed by the storefront
type BrandHandler struct {
	deps *Deps
}

func NewBrandHandler(deps *Deps) *BrandHandler {
	return &BrandHandler{deps: deps}
}

// ListBrands handles retrieving all active brands
func (h *BrandHandler) ListBrands(c echo.Context) error {
	log := logger.FromContext(c)

	var brands []model.Brand
	result := h.deps.DB.WithContext(c.Request().Context()).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&brands)
	if result.Error != nil {
		log.Error("Failed to list brands", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve brands",
		})
	}

	log.Info("Brands retrieved successfully", zap.Int("count", len(brands)))
	return c.JSON(http.StatusOK, brands)
}
