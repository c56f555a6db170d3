package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"carmarket-service/internal/model"

	"gorm.io/gorm"
)

var (
	// ErrCarNotFound is returned when no catalog row matches the lookup.
	ErrCarNotFound = errors.New("car not found")
	// ErrMissingIdentifier is returned when neither a model-year id nor
	// a trim id was supplied.
	ErrMissingIdentifier = errors.New("model_year_id or trim_id is required")
)

// CarDetail is the denormalized specification record produced by
// joining brand, model, model-year and (optionally) trim.
type CarDetail struct {
	BrandID       uint    `json:"brand_id"`
	BrandName     string  `json:"brand_name"`
	BrandLink     string  `json:"brand_link"`
	ModelID       string  `json:"model_id"`
	ModelName     string  `json:"model_name"`
	ModelSlug     string  `json:"model_slug"`
	ModelBodyType *string `json:"model_body_type"`
	ModelYearID   string  `json:"model_year_id"`
	Year          int     `json:"year"`
	TrimID        *string `json:"trim_id,omitempty"`
	TrimName      *string `json:"trim_name,omitempty"`
	FullName      *string `json:"full_name,omitempty"`
	Title         *string `json:"title,omitempty"`
	Fuel          *string `json:"fuel,omitempty"`
	Drive         *string `json:"drive,omitempty"`
	model.SpecFields
}

// LookupService is the catalog read path: one denormalized record per
// sellable configuration, consumed by the public detail endpoint and
// by listing enrichment.
type LookupService struct {
	db *gorm.DB
}

func NewLookupService(db *gorm.DB) *LookupService {
	return &LookupService{db: db}
}

// CarDetailByYearAndTrim returns the specification record for a
// model-year plus optional trim. A supplied trim id takes precedence
// over the model-year row.
func (s *LookupService) CarDetailByYearAndTrim(ctx context.Context, modelYearID string, trimID *string) (*CarDetail, error) {
	hasTrim := trimID != nil && *trimID != ""
	if modelYearID == "" && !hasTrim {
		return nil, ErrMissingIdentifier
	}

	if hasTrim {
		return s.byTrim(ctx, *trimID)
	}
	return s.byModelYear(ctx, modelYearID)
}

func (s *LookupService) byTrim(ctx context.Context, trimID string) (*CarDetail, error) {
	var detail CarDetail

	tx := s.db.WithContext(ctx).
		Table("trims").
		Select(joinSelect(
			"trims.id AS trim_id",
			"trims.trim_name AS trim_name",
			"trims.full_name AS full_name",
			"trims.title AS title",
			"trims.fuel AS fuel",
			"trims.drive AS drive",
		) + ", " + specSelect("trims")).
		Joins("JOIN model_years ON model_years.id = trims.model_year_id AND model_years.deleted_at IS NULL").
		Joins("JOIN models ON models.id = model_years.model_id AND models.deleted_at IS NULL").
		Joins("JOIN brands ON brands.id = models.brand_id AND brands.deleted_at IS NULL").
		Where("trims.id = ? AND trims.deleted_at IS NULL", trimID).
		Limit(1).
		Scan(&detail)

	if tx.Error != nil {
		return nil, fmt.Errorf("looking up trim %q: %w", trimID, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, ErrCarNotFound
	}
	return &detail, nil
}

func (s *LookupService) byModelYear(ctx context.Context, modelYearID string) (*CarDetail, error) {
	var detail CarDetail

	tx := s.db.WithContext(ctx).
		Table("model_years").
		Select(joinSelect(
			"model_years.title AS title",
			"model_years.fuel AS fuel",
			"model_years.drive AS drive",
		) + ", " + specSelect("model_years")).
		Joins("JOIN models ON models.id = model_years.model_id AND models.deleted_at IS NULL").
		Joins("JOIN brands ON brands.id = models.brand_id AND brands.deleted_at IS NULL").
		Where("model_years.id = ? AND model_years.deleted_at IS NULL", modelYearID).
		Limit(1).
		Scan(&detail)

	if tx.Error != nil {
		return nil, fmt.Errorf("looking up model year %q: %w", modelYearID, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, ErrCarNotFound
	}
	return &detail, nil
}

// joinSelect prepends the brand/model/model-year columns shared by
// both lookup variants.
func joinSelect(extra ...string) string {
	cols := []string{
		"brands.id AS brand_id",
		"brands.name AS brand_name",
		"brands.link AS brand_link",
		"models.id AS model_id",
		"models.name AS model_name",
		"models.slug AS model_slug",
		"models.body_type AS model_body_type",
		"model_years.id AS model_year_id",
		"model_years.year AS year",
	}
	return strings.Join(append(cols, extra...), ", ")
}

// specSelect qualifies the shared specification columns with the table
// the lookup treats as authoritative.
func specSelect(table string) string {
	cols := make([]string, 0, len(specColumns))
	for _, c := range specColumns {
		cols = append(cols, fmt.Sprintf("%s.%s AS %s", table, c, c))
	}
	return strings.Join(cols, ", ")
}
