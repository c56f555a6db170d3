package model

import (
	"time"

	"gorm.io/gorm"
)

// SpecFields is the optional specification attribute bag shared by
// model years and trims. A trim's values refine its parent model-year.
type SpecFields struct {
	Engine              *string  `json:"engine,omitempty" gorm:"type:varchar(100)"`
	Motor               *string  `json:"motor,omitempty" gorm:"type:varchar(100)"`
	Transmission        *string  `json:"transmission,omitempty" gorm:"type:varchar(50)"`
	PowerHP             *int     `json:"power_hp,omitempty" gorm:"column:power_hp"`
	BodyType            *string  `json:"body_type,omitempty" gorm:"type:varchar(50)"`
	Seats               *int     `json:"seats,omitempty"`
	FuelConsumptionL100 *float64 `json:"fuel_consumption_l_100km,omitempty" gorm:"column:fuel_consumption_l_100km;type:decimal(5,2)"`
	RangeKm             *int     `json:"range_km,omitempty"`
	WhPerKm             *int     `json:"wh_per_km,omitempty"`
	TopSpeedKmh         *int     `json:"top_speed_kmh,omitempty"`
	Acceleration0100    *float64 `json:"acceleration_0_100,omitempty" gorm:"column:acceleration_0_100;type:decimal(4,2)"`
	LengthMm            *int     `json:"length_mm,omitempty"`
	WidthMm             *int     `json:"width_mm,omitempty"`
	HeightMm            *int     `json:"height_mm,omitempty"`
	WheelbaseMm         *int     `json:"wheelbase_mm,omitempty"`
	WeightKg            *int     `json:"weight_kg,omitempty"`
	GroundClearanceMm   *int     `json:"ground_clearance_mm,omitempty"`
	RimType             *string  `json:"rim_type,omitempty" gorm:"type:varchar(100)"`
	TireSize            *string  `json:"tire_size,omitempty" gorm:"type:varchar(50)"`
	TrunkVolumeL        *int     `json:"trunk_volume_l,omitempty" gorm:"column:trunk_volume_l"`
	Airbags             *int     `json:"airbags,omitempty"`
}

// CarModel is one model line of a brand. The id is the stable key
// supplied by the catalog master files.
type CarModel struct {
	ID        string         `json:"id" gorm:"type:uuid;primarykey"`
	BrandID   uint           `json:"brand_id" gorm:"index;not null"`
	Brand     Brand          `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Name      string         `json:"name" gorm:"type:varchar(100);not null"`
	Slug      string         `json:"slug" gorm:"type:varchar(100);not null"`
	BodyType  *string        `json:"body_type,omitempty" gorm:"type:varchar(50)"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

func (CarModel) TableName() string { return "models" }

// ModelYear is a model as sold in one particular year.
type ModelYear struct {
	ID        string         `json:"id" gorm:"type:uuid;primarykey"`
	ModelID   string         `json:"model_id" gorm:"type:uuid;index;not null"`
	Model     CarModel       `json:"-" gorm:"foreignKey:ModelID;constraint:OnDelete:CASCADE"`
	Year      int            `json:"year" gorm:"index;not null"`
	Title     *string        `json:"title,omitempty" gorm:"type:varchar(255)"`
	Fuel      *string        `json:"fuel,omitempty" gorm:"type:varchar(50)"`
	Drive     *string        `json:"drive,omitempty" gorm:"type:varchar(50)"`
	SpecFields
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

func (ModelYear) TableName() string { return "model_years" }

// Trim is a sellable configuration of a model year. A model-year with
// no explicit trims gets one synthetic trim whose id equals the
// model-year id, so every leaf configuration has one addressable key.
type Trim struct {
	ID          string         `json:"id" gorm:"type:uuid;primarykey"`
	ModelYearID string         `json:"model_year_id" gorm:"type:uuid;index;not null"`
	ModelYear   ModelYear      `json:"-" gorm:"foreignKey:ModelYearID;constraint:OnDelete:CASCADE"`
	TrimName    string         `json:"trim_name" gorm:"type:varchar(100);not null"`
	FullName    *string        `json:"full_name,omitempty" gorm:"type:varchar(255)"`
	Title       *string        `json:"title,omitempty" gorm:"type:varchar(255)"`
	Fuel        string         `json:"fuel" gorm:"type:varchar(50);not null;index"`
	Drive       string         `json:"drive" gorm:"type:varchar(50);not null"`
	SpecFields
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

func (Trim) TableName() string { return "trims" }
