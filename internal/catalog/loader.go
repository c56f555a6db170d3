// Package catalog implements the brand/model/model-year/trim reference
// hierarchy: loading the JSON master files, reconciling them into the
// relational store, projecting them into search documents, and the
// denormalized read path used by listings.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ErrMalformedFile marks a catalog file whose root is missing the
// expected models array. The file is skipped, never fatal to a run.
var ErrMalformedFile = errors.New("catalog file missing models array")

// SpecAttrs mirrors the optional specification attributes that may
// appear on a model-year or trim entry in the master files.
type SpecAttrs struct {
	Engine              *string  `json:"engine"`
	Motor               *string  `json:"motor"`
	Transmission        *string  `json:"transmission"`
	PowerHP             *int     `json:"power_hp"`
	BodyType            *string  `json:"body_type"`
	Seats               *int     `json:"seats"`
	FuelConsumptionL100 *float64 `json:"fuel_consumption_l_100km"`
	RangeKm             *int     `json:"range_km"`
	WhPerKm             *int     `json:"wh_per_km"`
	TopSpeedKmh         *int     `json:"top_speed_kmh"`
	Acceleration0100    *float64 `json:"acceleration_0_100"`
	LengthMm            *int     `json:"length_mm"`
	WidthMm             *int     `json:"width_mm"`
	HeightMm            *int     `json:"height_mm"`
	WheelbaseMm         *int     `json:"wheelbase_mm"`
	WeightKg            *int     `json:"weight_kg"`
	GroundClearanceMm   *int     `json:"ground_clearance_mm"`
	RimType             *string  `json:"rim_type"`
	TireSize            *string  `json:"tire_size"`
	TrunkVolumeL        *int     `json:"trunk_volume_l"`
	Airbags             *int     `json:"airbags"`
}

// TrimRecord is one trim entry of a model year.
type TrimRecord struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	FullName *string `json:"full_name"`
	Title    *string `json:"title"`
	Fuel     *string `json:"fuel"`
	Drive    *string `json:"drive"`
	SpecAttrs
}

// ModelYearRecord is one model-year entry; trims may be absent.
type ModelYearRecord struct {
	ID       string       `json:"id"`
	Year     int          `json:"year"`
	Title    *string      `json:"title"`
	FullName *string      `json:"full_name"`
	Name     *string      `json:"name"`
	Fuel     *string      `json:"fuel"`
	Drive    *string      `json:"drive"`
	Trims    []TrimRecord `json:"trims"`
	SpecAttrs
}

// ModelRecord is one model line in a brand file.
type ModelRecord struct {
	ID         string            `json:"id"`
	Name       string            `json:"model"`
	Slug       *string           `json:"slug"`
	Fuel       *string           `json:"fuel"`
	BodyType   *string           `json:"body_type"`
	ModelYears []ModelYearRecord `json:"model_years"`
}

// BrandFile is one parsed catalog master file.
type BrandFile struct {
	BrandID  int           `json:"brand_id"`
	Models   []ModelRecord `json:"models"`
	FileName string        `json:"-"`
}

// Loader reads catalog master files from a directory.
type Loader struct {
	log *zap.Logger
}

func NewLoader(log *zap.Logger) *Loader {
	return &Loader{log: log}
}

// LoadFile parses one catalog master file. Returns ErrMalformedFile
// (wrapped) when the root does not carry a models array.
func (l *Loader) LoadFile(path string) (*BrandFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var probe struct {
		BrandID int             `json:"brand_id"`
		Models  json.RawMessage `json:"models"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	if len(probe.Models) == 0 || string(probe.Models) == "null" {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrMalformedFile)
	}

	var models []ModelRecord
	if err := json.Unmarshal(probe.Models, &models); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrMalformedFile)
	}

	return &BrandFile{
		BrandID:  probe.BrandID,
		Models:   models,
		FileName: filepath.Base(path),
	}, nil
}

// LoadDir parses every .json file in dir. Files that fail structural
// validation are logged and skipped; only an unreadable directory is an
// error. Non-.json files are ignored.
func (l *Loader) LoadDir(dir string) ([]BrandFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading catalog directory %s: %w", dir, err)
	}

	var files []BrandFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}

		file, err := l.LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			l.log.Error("skipping catalog file",
				zap.String("file", entry.Name()),
				zap.Error(err))
			continue
		}
		files = append(files, *file)
	}

	if len(files) == 0 {
		l.log.Warn("no usable catalog files found", zap.String("dir", dir))
	}
	return files, nil
}
