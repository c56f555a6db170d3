package catalog

import (
	"context"
	"fmt"

	"carmarket-service/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultFuel  = "gasoline"
	defaultDrive = "FWD"
)

var specColumns = []string{
	"engine", "motor", "transmission", "power_hp", "body_type", "seats",
	"fuel_consumption_l_100km", "range_km", "wh_per_km", "top_speed_kmh",
	"acceleration_0_100", "length_mm", "width_mm", "height_mm",
	"wheelbase_mm", "weight_kg", "ground_clearance_mm", "rim_type",
	"tire_size", "trunk_volume_l", "airbags",
}

// Syncer reconciles parsed catalog files into the relational store.
// Every write is an upsert by primary key, so re-running against
// unchanged input leaves the store unchanged.
type Syncer struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSyncer(db *gorm.DB, log *zap.Logger) *Syncer {
	return &Syncer{db: db, log: log}
}

// ResetCatalogTables truncates models, model_years and trims so a full
// resync leaves no orphaned rows behind a master-file rename/removal.
func (s *Syncer) ResetCatalogTables(ctx context.Context) error {
	if err := s.db.WithContext(ctx).
		Exec("TRUNCATE TABLE models, model_years, trims RESTART IDENTITY CASCADE").Error; err != nil {
		return fmt.Errorf("truncating catalog tables: %w", err)
	}
	s.log.Info("catalog tables truncated")
	return nil
}

// ResetBrands truncates the brands table.
func (s *Syncer) ResetBrands(ctx context.Context) error {
	if err := s.db.WithContext(ctx).
		Exec("TRUNCATE TABLE brands RESTART IDENTITY CASCADE").Error; err != nil {
		return fmt.Errorf("truncating brands: %w", err)
	}
	s.log.Info("brands table truncated")
	return nil
}

// SyncBrands upserts the static master brand list by id.
func (s *Syncer) SyncBrands(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, brand := range MasterBrands {
			b := brand
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "link", "description", "image", "is_active", "updated_at"}),
			}).Create(&b).Error; err != nil {
				return fmt.Errorf("upserting brand %q: %w", brand.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info("master brands synced", zap.Int("count", len(MasterBrands)))
	return nil
}

// SyncFile writes one catalog file into the relational store inside a
// single transaction: models, then model-years, then trims. A
// model-year without trims gets one synthetic trim whose id equals the
// model-year id.
func (s *Syncer) SyncFile(ctx context.Context, file *BrandFile) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range file.Models {
			m := &file.Models[i]

			row := modelRow(file.BrandID, m)
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"brand_id", "name", "slug", "body_type", "updated_at"}),
			}).Create(&row).Error; err != nil {
				return fmt.Errorf("upserting model %q: %w", m.ID, err)
			}

			for j := range m.ModelYears {
				my := &m.ModelYears[j]

				yearRow := modelYearRow(m, my)
				if err := tx.Clauses(clause.OnConflict{
					Columns: []clause.Column{{Name: "id"}},
					DoUpdates: clause.AssignmentColumns(append(
						[]string{"model_id", "year", "title", "fuel", "drive", "updated_at"}, specColumns...)),
				}).Create(&yearRow).Error; err != nil {
					return fmt.Errorf("upserting model year %q: %w", my.ID, err)
				}

				rows := trimRows(m, my)
				for k := range rows {
					if err := tx.Clauses(clause.OnConflict{
						Columns: []clause.Column{{Name: "id"}},
						DoUpdates: clause.AssignmentColumns(append(
							[]string{"model_year_id", "trim_name", "full_name", "title", "fuel", "drive", "updated_at"}, specColumns...)),
					}).Create(&rows[k]).Error; err != nil {
						return fmt.Errorf("upserting trim %q: %w", rows[k].ID, err)
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("syncing %s: %w", file.FileName, err)
	}

	s.log.Info("catalog file synced to database",
		zap.String("file", file.FileName),
		zap.Int("models", len(file.Models)))
	return nil
}

func modelRow(brandID int, m *ModelRecord) model.CarModel {
	slug := ""
	if m.Slug != nil && *m.Slug != "" {
		slug = *m.Slug
	} else {
		slug = Slugify(m.Name)
	}
	return model.CarModel{
		ID:       m.ID,
		BrandID:  uint(brandID),
		Name:     m.Name,
		Slug:     slug,
		BodyType: m.BodyType,
	}
}

func modelYearRow(m *ModelRecord, my *ModelYearRecord) model.ModelYear {
	title := my.Title
	if title == nil {
		t := fmt.Sprintf("%s %d", m.Name, my.Year)
		title = &t
	}
	return model.ModelYear{
		ID:         my.ID,
		ModelID:    m.ID,
		Year:       my.Year,
		Title:      title,
		Fuel:       my.Fuel,
		Drive:      my.Drive,
		SpecFields: specFields(&my.SpecAttrs, m.BodyType),
	}
}

// trimRows builds the trim rows of one model year: its listed trims,
// or a single synthetic trim when none are listed.
func trimRows(m *ModelRecord, my *ModelYearRecord) []model.Trim {
	if len(my.Trims) == 0 {
		return []model.Trim{syntheticTrimRow(m, my)}
	}

	rows := make([]model.Trim, 0, len(my.Trims))
	for i := range my.Trims {
		t := &my.Trims[i]
		rows = append(rows, model.Trim{
			ID:          t.ID,
			ModelYearID: my.ID,
			TrimName:    t.Name,
			FullName:    t.FullName,
			Title:       t.Title,
			Fuel:        coalesce(t.Fuel, m.Fuel, defaultFuel),
			Drive:       coalesce(t.Drive, nil, defaultDrive),
			SpecFields:  specFields(&t.SpecAttrs, m.BodyType),
		})
	}
	return rows
}

func syntheticTrimRow(m *ModelRecord, my *ModelYearRecord) model.Trim {
	return model.Trim{
		ID:          my.ID,
		ModelYearID: my.ID,
		TrimName:    m.Name,
		FullName:    my.FullName,
		Title:       my.Title,
		Fuel:        coalesce(my.Fuel, m.Fuel, defaultFuel),
		Drive:       coalesce(my.Drive, nil, defaultDrive),
		SpecFields:  specFields(&my.SpecAttrs, m.BodyType),
	}
}

func specFields(a *SpecAttrs, modelBodyType *string) model.SpecFields {
	bodyType := a.BodyType
	if bodyType == nil {
		bodyType = modelBodyType
	}
	return model.SpecFields{
		Engine:              a.Engine,
		Motor:               a.Motor,
		Transmission:        a.Transmission,
		PowerHP:             a.PowerHP,
		BodyType:            bodyType,
		Seats:               a.Seats,
		FuelConsumptionL100: a.FuelConsumptionL100,
		RangeKm:             a.RangeKm,
		WhPerKm:             a.WhPerKm,
		TopSpeedKmh:         a.TopSpeedKmh,
		Acceleration0100:    a.Acceleration0100,
		LengthMm:            a.LengthMm,
		WidthMm:             a.WidthMm,
		HeightMm:            a.HeightMm,
		WheelbaseMm:         a.WheelbaseMm,
		WeightKg:            a.WeightKg,
		GroundClearanceMm:   a.GroundClearanceMm,
		RimType:             a.RimType,
		TireSize:            a.TireSize,
		TrunkVolumeL:        a.TrunkVolumeL,
		Airbags:             a.Airbags,
	}
}

// coalesce returns the first non-empty choice, then the fallback.
func coalesce(first, second *string, fallback string) string {
	if first != nil && *first != "" {
		return *first
	}
	if second != nil && *second != "" {
		return *second
	}
	return fallback
}
