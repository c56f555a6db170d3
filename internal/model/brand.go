package model

import (
	"time"

	"gorm.io/gorm"
)

// Brand is a catalog manufacturer. Brands are synced from the static
// master list, never created by end users.
type Brand struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Name        string         `json:"name" gorm:"type:varchar(150);not null;uniqueIndex:uq_brands_name"`
	Link        string         `json:"link" gorm:"type:varchar(180);not null;uniqueIndex:uq_brands_link"`
	Description string         `json:"description" gorm:"type:text"`
	Image       string         `json:"image" gorm:"type:varchar(255)"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
