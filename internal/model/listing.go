package model

import (
	"time"

	"gorm.io/gorm"
)

// ListingCondition is the advertised condition of a listed car.
type ListingCondition string

const (
	ConditionNew     ListingCondition = "new"
	ConditionLikeNew ListingCondition = "like_new"
	ConditionUsed    ListingCondition = "used"
	ConditionZin     ListingCondition = "zin"
)

// ListingStatus is the lifecycle state of a listing.
type ListingStatus string

const (
	StatusDraft   ListingStatus = "draft"
	StatusActive  ListingStatus = "active"
	StatusSold    ListingStatus = "sold"
	StatusPending ListingStatus = "pending"
	StatusExpired ListingStatus = "expired"
	StatusDeleted ListingStatus = "deleted"
)

// Listing is a seller-submitted car for sale, referencing one catalog
// leaf (model-year plus optional trim). The relational row is
// authoritative; the cars_for_sale index is a read optimization.
type Listing struct {
	ID            uint                   `json:"id" gorm:"primarykey"`
	SellerID      uint                   `json:"seller_id" gorm:"index;not null"`
	ModelYearID   string                 `json:"model_year_id" gorm:"type:uuid;index;not null"`
	TrimID        *string                `json:"trim_id,omitempty" gorm:"type:uuid;index"`
	Fuel          string                 `json:"fuel" gorm:"type:varchar(50);not null;index"`
	Title         string                 `json:"title" gorm:"type:varchar(255);not null"`
	Description   string                 `json:"description" gorm:"type:text"`
	Price         float64                `json:"price" gorm:"type:decimal(15,2);not null;index"`
	Condition     ListingCondition       `json:"condition" gorm:"type:varchar(20);not null;default:'new'"`
	Status        ListingStatus          `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	Odo           *int                   `json:"odo,omitempty"`
	Year          *int                   `json:"year,omitempty" gorm:"index"`
	Color         *string                `json:"color,omitempty" gorm:"type:varchar(50)"`
	VIN           *string                `json:"vin,omitempty" gorm:"column:vin;type:varchar(17)"`
	LicensePlate  *string                `json:"license_plate,omitempty" gorm:"type:varchar(20)"`
	Province      *string                `json:"province,omitempty" gorm:"type:varchar(100);index"`
	Images        []string               `json:"images,omitempty" gorm:"serializer:json"`
	Thumbnail     *string                `json:"thumbnail,omitempty" gorm:"type:varchar(255)"`
	Features      map[string]interface{} `json:"features,omitempty" gorm:"serializer:json"`
	ContactPhone  *string                `json:"contact_phone,omitempty" gorm:"type:varchar(20)"`
	ContactEmail  *string                `json:"contact_email,omitempty" gorm:"type:varchar(255)"`
	ViewCount     int                    `json:"view_count" gorm:"default:0"`
	FavoriteCount int                    `json:"favorite_count" gorm:"default:0"`
	IsFeatured    bool                   `json:"is_featured" gorm:"default:false;index"`
	FeaturedUntil *time.Time             `json:"featured_until,omitempty"`
	ExpiresAt     *time.Time             `json:"expires_at,omitempty"`
	SoldAt        *time.Time             `json:"sold_at,omitempty"`
	CreatedAt     time.Time              `json:"created_at" gorm:"index"`
	UpdatedAt     time.Time              `json:"updated_at"`
	DeletedAt     gorm.DeletedAt         `json:"deleted_at,omitempty" gorm:"index"`
}

func (Listing) TableName() string { return "cars_for_sale" }
