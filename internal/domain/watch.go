package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Watch struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string          `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ReferenceCode   string          `gorm:"size:255;uniqueIndex;not null" json:"referenceCode"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	PrimaryPhotoURL string          `gorm:"size:500" json:"primaryPhotoUrl"`
	BrandID         uuid.UUID       `gorm:"type:uuid;index;not null" json:"brandId"`
	Brand           *Brand          `json:"brand,omitempty"`
	StockQuantity   int             `gorm:"not null;default:0" json:"stockQuantity"`
	IsAvailable     bool            `gorm:"not null;default:true;index" json:"isAvailable"`

	Colors     []Color    `gorm:"many2many:watch_colors" json:"colors,omitempty"`
	Categories []Category `gorm:"many2many:watch_categories" json:"categories,omitempty"`
	Concepts   []Concept  `gorm:"many2many:watch_concepts" json:"concepts,omitempty"`
	Materials  []Material `gorm:"many2many:watch_materials" json:"materials,omitempty"`

	Photos                []WatchPhoto                `json:"photos,omitempty"`
	SpecificationHeadings []WatchSpecificationHeading `json:"specificationHeadings,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type WatchPhoto struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	WatchID   uuid.UUID `gorm:"type:uuid;index" json:"watchId"`
	PhotoURL  string    `gorm:"size:500;not null" json:"photoUrl"`
	AltText   string    `gorm:"size:255" json:"altText,omitempty"`
	Order     int       `gorm:"not null;default:0" json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}

type WatchSpecificationHeading struct {
	ID          uuid.UUID                 `gorm:"type:uuid;primaryKey" json:"id"`
	WatchID     uuid.UUID                 `gorm:"type:uuid;index" json:"watchId"`
	Heading     string                    `gorm:"size:255;not null" json:"heading"`
	Description string                    `gorm:"size:255" json:"description,omitempty"`
	Points      []WatchSpecificationPoint `gorm:"foreignKey:HeadingID" json:"specificationPoints,omitempty"`
}

type WatchSpecificationPoint struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	HeadingID uuid.UUID `gorm:"type:uuid;index" json:"headingId"`
	Label     string    `gorm:"size:255;not null" json:"label"`
	Value     string    `gorm:"size:500;not null" json:"value"`
}
