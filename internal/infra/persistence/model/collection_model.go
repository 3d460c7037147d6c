package model

import (
	"time"

	"github.com/google/uuid"
)

// CollectionModel is the GORM-specific struct for the 'measurement_collections' table.
type CollectionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_collections_on_name"`
	CRS       string    `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time
	Segments  []SegmentModel `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CollectionModel) TableName() string {
	return "measurement_collections"
}

// SegmentModel is the GORM-specific struct for the 'measurement_segments' table.
type SegmentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CollectionID uuid.UUID `gorm:"type:uuid;not null;index:idx_segments_on_collection"`
	LineID       int       `gorm:"not null"`
	StartText    string    `gorm:"type:varchar(50);not null"`
	StopText     string    `gorm:"type:varchar(50);not null"`
	StartX       float64   `gorm:"type:decimal(12,6);not null"`
	StartY       float64   `gorm:"type:decimal(12,6);not null"`
	StopX        float64   `gorm:"type:decimal(12,6);not null"`
	StopY        float64   `gorm:"type:decimal(12,6);not null"`
	LengthM      float64   `gorm:"not null"`
	LengthNM     float64   `gorm:"not null"`
	CumLengthM   float64   `gorm:"not null"`
	CumLengthNM  float64   `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SegmentModel) TableName() string {
	return "measurement_segments"
}
