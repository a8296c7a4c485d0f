package models

import "github.com/google/uuid"

type Category struct {
	BaseModel
	Name         string `gorm:"uniqueIndex;not null" json:"name"`
	DisplayOrder int    `json:"display_order"`
}

// ProductCategory maps a product name to a category. At most one mapping
// exists per product; reassignment overwrites the previous one.
type ProductCategory struct {
	BaseModel
	Product    string    `gorm:"uniqueIndex;not null" json:"product"`
	CategoryID uuid.UUID `gorm:"type:uuid;index" json:"category_id"`
	Category   *Category `json:"category,omitempty"`
}
