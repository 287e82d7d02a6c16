package models

// Brand represents a product brand. Brand names are unique across the catalog.
type Brand struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"uniqueIndex"`
}

// BrandRequest is the write payload for brands.
type BrandRequest struct {
	Name string `json:"name" validate:"required"`
}
