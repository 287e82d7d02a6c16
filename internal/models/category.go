package models

// Category represents a product category. Category names are unique across
// the catalog, independently of brand names.
type Category struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"uniqueIndex"`
}

// CategoryRequest is the write payload for categories.
type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}
