package handler

import (
	"net/http"
	"strconv"
	"time"

	"carmarket-service/internal/middleware"
	"carmarket-service/internal/model"
	"carmarket-service/internal/searchsync"
	"carmarket-service/pkg/logger"
	"carmarket-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListingRequest defines the structure for listing creation requests
type ListingRequest struct {
	ModelYearID  string                 `json:"model_year_id" validate:"required"`
	TrimID       *string                `json:"trim_id"`
	Fuel         string                 `json:"fuel" validate:"required"`
	Title        string                 `json:"title" validate:"required"`
	Description  string                 `json:"description"`
	Price        float64                `json:"price" validate:"required,gt=0"`
	Condition    string                 `json:"condition"`
	Status       string                 `json:"status"`
	Odo          *int                   `json:"odo"`
	Year         *int                   `json:"year"`
	Color        *string                `json:"color"`
	VIN          *string                `json:"vin"`
	LicensePlate *string                `json:"license_plate"`
	Province     *string                `json:"province"`
	Images       []string               `json:"images"`
	Thumbnail    *string                `json:"thumbnail"`
	Features     map[string]interface{} `json:"features"`
	ContactPhone *string                `json:"contact_phone"`
	ContactEmail *string                `json:"contact_email"`
	IsFeatured   bool                   `json:"is_featured"`
}

// ListingUpdateRequest carries the partial update payload; only
// non-nil fields are applied
type ListingUpdateRequest struct {
	ModelYearID  *string                `json:"model_year_id"`
	TrimID       *string                `json:"trim_id"`
	Fuel         *string                `json:"fuel"`
	Title        *string                `json:"title"`
	Description  *string                `json:"description"`
	Price        *float64               `json:"price"`
	Condition    *string                `json:"condition"`
	Status       *string                `json:"status"`
	Odo          *int                   `json:"odo"`
	Year         *int                   `json:"year"`
	Color        *string                `json:"color"`
	VIN          *string                `json:"vin"`
	LicensePlate *string                `json:"license_plate"`
	Province     *string                `json:"province"`
	Images       []string               `json:"images"`
	Thumbnail    *string                `json:"thumbnail"`
	Features     map[string]interface{} `json:"features"`
	ContactPhone *string                `json:"contact_phone"`
	ContactEmail *string                `json:"contact_email"`
	IsFeatured   *bool                  `json:"is_featured"`
}

// ListingHandler implements the seller CRUD surface for cars for sale.
// Every successful relational write is mirrored into the listings
// index best-effort; an indexing failure never fails the request.
type ListingHandler struct {
	deps *Deps
}

func NewListingHandler(deps *Deps) *ListingHandler {
	return &ListingHandler{deps: deps}
}

// ListListings handles retrieving listings from the search index with
// optional status and seller filters
func (h *ListingHandler) ListListings(c echo.Context) error {
	log := logger.FromContext(c)

	req := listingSearchFromQuery(c)
	results, err := h.deps.Indexer.SearchListings(c.Request().Context(), req)
	if err != nil {
		log.Error("Failed to search listings", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve listings"})
	}

	return c.JSON(http.StatusOK, results)
}

// ListMyListings handles retrieving the authenticated seller's listings
func (h *ListingHandler) ListMyListings(c echo.Context) error {
	log := logger.FromContext(c)

	sellerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	req := listingSearchFromQuery(c)
	req.SellerID = &sellerID

	results, err := h.deps.Indexer.SearchListings(c.Request().Context(), req)
	if err != nil {
		log.Error("Failed to search seller listings",
			zap.Uint("seller_id", sellerID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve listings"})
	}

	return c.JSON(http.StatusOK, results)
}

// GetListing handles retrieving a single listing by ID
func (h *ListingHandler) GetListing(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var listing model.Listing
	result := h.deps.DB.WithContext(c.Request().Context()).First(&listing, id)
	if result.Error != nil {
		log.Warn("Listing not found", zap.String("listing_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Listing not found"})
	}

	return c.JSON(http.StatusOK, listing)
}

// CreateListing handles creating a new listing for the authenticated seller
func (h *ListingHandler) CreateListing(c echo.Context) error {
	log := logger.FromContext(c)

	sellerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req ListingRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.ModelYearID == "" || req.Fuel == "" || req.Title == "" || req.Price <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "model_year_id, fuel, title and a positive price are required"})
	}

	listing := model.Listing{
		SellerID:     sellerID,
		ModelYearID:  req.ModelYearID,
		TrimID:       req.TrimID,
		Fuel:         req.Fuel,
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Condition:    model.ListingCondition(defaultIfEmpty(req.Condition, string(model.ConditionNew))),
		Status:       model.ListingStatus(defaultIfEmpty(req.Status, string(model.StatusDraft))),
		Odo:          req.Odo,
		Year:         req.Year,
		Color:        req.Color,
		VIN:          req.VIN,
		LicensePlate: req.LicensePlate,
		Province:     req.Province,
		Images:       req.Images,
		Thumbnail:    req.Thumbnail,
		Features:     req.Features,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		IsFeatured:   req.IsFeatured,
	}

	result := h.deps.DB.WithContext(c.Request().Context()).Create(&listing)
	if result.Error != nil {
		log.Error("Failed to create listing",
			zap.Uint("seller_id", sellerID),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create listing"})
	}

	prometheus.RecordListingOperation("create")

	// Best-effort mirror into the listings index; never fails the request.
	h.deps.Indexer.IndexListing(c.Request().Context(), &listing)

	log.Info("Listing created successfully",
		zap.Uint("listing_id", listing.ID),
		zap.Uint("seller_id", sellerID))
	return c.JSON(http.StatusCreated, listing)
}

// UpdateListing handles updating an existing listing owned by the caller
func (h *ListingHandler) UpdateListing(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	sellerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req ListingUpdateRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("listing_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var listing model.Listing
	result := h.deps.DB.WithContext(c.Request().Context()).First(&listing, id)
	if result.Error != nil {
		log.Warn("Listing not found for update", zap.String("listing_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Listing not found"})
	}

	if listing.SellerID != sellerID {
		log.Warn("Listing update denied",
			zap.String("listing_id", id),
			zap.Uint("seller_id", sellerID),
			zap.Uint("owner_id", listing.SellerID))
		return c.JSON(http.StatusForbidden, echo.Map{"error": "You can only update your own listings"})
	}

	applyListingUpdate(&listing, &req)

	result = h.deps.DB.WithContext(c.Request().Context()).Save(&listing)
	if result.Error != nil {
		log.Error("Failed to update listing", zap.String("listing_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update listing"})
	}

	prometheus.RecordListingOperation("update")
	h.deps.Indexer.IndexListing(c.Request().Context(), &listing)

	log.Info("Listing updated successfully", zap.Uint("listing_id", listing.ID))
	return c.JSON(http.StatusOK, listing)
}

// DeleteListing handles soft-deleting a listing owned by the caller
func (h *ListingHandler) DeleteListing(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	sellerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var listing model.Listing
	result := h.deps.DB.WithContext(c.Request().Context()).First(&listing, id)
	if result.Error != nil {
		log.Warn("Listing not found for deletion", zap.String("listing_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Listing not found"})
	}

	if listing.SellerID != sellerID {
		log.Warn("Listing deletion denied",
			zap.String("listing_id", id),
			zap.Uint("seller_id", sellerID))
		return c.JSON(http.StatusForbidden, echo.Map{"error": "You can only delete your own listings"})
	}

	result = h.deps.DB.WithContext(c.Request().Context()).Delete(&listing)
	if result.Error != nil {
		log.Error("Failed to delete listing", zap.String("listing_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete listing"})
	}

	prometheus.RecordListingOperation("delete")
	h.deps.Indexer.RemoveListing(listing.ID)

	log.Info("Listing deleted successfully", zap.Uint("listing_id", listing.ID))
	return c.JSON(http.StatusOK, echo.Map{"message": "Listing deleted successfully"})
}

func applyListingUpdate(listing *model.Listing, req *ListingUpdateRequest) {
	if req.ModelYearID != nil {
		listing.ModelYearID = *req.ModelYearID
	}
	if req.TrimID != nil {
		listing.TrimID = req.TrimID
	}
	if req.Fuel != nil {
		listing.Fuel = *req.Fuel
	}
	if req.Title != nil {
		listing.Title = *req.Title
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.Price != nil {
		listing.Price = *req.Price
	}
	if req.Condition != nil {
		listing.Condition = model.ListingCondition(*req.Condition)
	}
	if req.Status != nil {
		listing.Status = model.ListingStatus(*req.Status)
		if listing.Status == model.StatusSold && listing.SoldAt == nil {
			now := time.Now()
			listing.SoldAt = &now
		}
	}
	if req.Odo != nil {
		listing.Odo = req.Odo
	}
	if req.Year != nil {
		listing.Year = req.Year
	}
	if req.Color != nil {
		listing.Color = req.Color
	}
	if req.VIN != nil {
		listing.VIN = req.VIN
	}
	if req.LicensePlate != nil {
		listing.LicensePlate = req.LicensePlate
	}
	if req.Province != nil {
		listing.Province = req.Province
	}
	if req.Images != nil {
		listing.Images = req.Images
	}
	if req.Thumbnail != nil {
		listing.Thumbnail = req.Thumbnail
	}
	if req.Features != nil {
		listing.Features = req.Features
	}
	if req.ContactPhone != nil {
		listing.ContactPhone = req.ContactPhone
	}
	if req.ContactEmail != nil {
		listing.ContactEmail = req.ContactEmail
	}
	if req.IsFeatured != nil {
		listing.IsFeatured = *req.IsFeatured
	}
}

func defaultIfEmpty(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// listingSearchFromQuery builds a listings-index query from the
// request's query parameters.
func listingSearchFromQuery(c echo.Context) *searchsync.ListingSearch {
	req := &searchsync.ListingSearch{
		Text:      c.QueryParam("query"),
		Status:    c.QueryParam("status"),
		Page:      queryParamInt(c, "page", 1),
		PerPage:   queryParamInt(c, "per_page", 10),
		SortBy:    c.QueryParam("sort_by"),
		SortOrder: c.QueryParam("sort_order"),
	}
	if req.PerPage > maxPerPage {
		req.PerPage = maxPerPage
	}
	if raw := c.QueryParam("seller_id"); raw != "" {
		if sellerID, err := strconv.ParseUint(raw, 10, 32); err == nil {
			id := uint(sellerID)
			req.SellerID = &id
		}
	}
	return req
}
