package model

import (
	"time"

	"github.com/google/uuid"
)

// PinModel is the GORM-specific struct for the 'pins' table.
// The id is generated by the application so optimistic inserts keep their key.
type PinModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index:idx_pins_owner_created,priority:1"`
	Title       string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	Latitude    float64   `gorm:"type:double precision;not null;check:chk_pins_latitude,latitude BETWEEN -90 AND 90"`
	Longitude   float64   `gorm:"type:double precision;not null;check:chk_pins_longitude,longitude BETWEEN -180 AND 180"`
	Category    string    `gorm:"type:varchar(32);not null;default:'other'"`
	Color       string    `gorm:"type:varchar(16);not null"`
	IsFavorite  bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null;index:idx_pins_owner_created,priority:2,sort:desc"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PinModel) TableName() string {
	return "pins"
}
