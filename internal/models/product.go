package models

// Product is the aggregate root of the catalog. A product always references
// exactly one brand and one category, and exclusively owns its variations:
// deleting a product cascades to every variation and their attributes.
type Product struct {
	ID          int64              `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	BrandID     int64              `json:"-" gorm:"index"`
	Brand       Brand              `json:"brand" gorm:"foreignKey:BrandID"`
	CategoryID  int64              `json:"-" gorm:"index"`
	Category    Category           `json:"category" gorm:"foreignKey:CategoryID"`
	Variations  []ProductVariation `json:"variations" gorm:"foreignKey:ProductID"`
}

// ProductVariation is a purchasable configuration of a product (a SKU with
// its own price and stock). SKUs are unique within the owning product's
// variation set, case-insensitively. ProductID is a navigational
// back-reference only; the product owns the variation's lifecycle.
type ProductVariation struct {
	ID         int64                       `json:"id" gorm:"primaryKey;autoIncrement"`
	Sku        string                      `json:"sku"`
	Price      float64                     `json:"price"`
	Stock      int                         `json:"stock"`
	ImageURL   string                      `json:"imageUrl" gorm:"column:image_url"`
	ProductID  int64                       `json:"-" gorm:"index"`
	Attributes []ProductVariationAttribute `json:"attributes" gorm:"foreignKey:VariationID"`
}

// ProductVariationAttribute is a name/value pair fully owned by a single
// variation. It has no identity beyond its owner and is never shared.
type ProductVariationAttribute struct {
	ID             int64  `json:"-" gorm:"primaryKey;autoIncrement"`
	AttributeName  string `json:"attributeName"`
	AttributeValue string `json:"attributeValue"`
	VariationID    int64  `json:"-" gorm:"index"`
}

// ProductRequest is the write payload for products. BrandID and CategoryID
// are pointers so a missing field can be told apart from zero. Variations may
// only be supplied on create; updates must leave them nil.
type ProductRequest struct {
	Name        string                    `json:"name" validate:"required"`
	Description string                    `json:"description" validate:"required"`
	BrandID     *int64                    `json:"brandId" validate:"required"`
	CategoryID  *int64                    `json:"categoryId" validate:"required"`
	Variations  []ProductVariationRequest `json:"variations"`
}

// ProductVariationRequest is the write payload for variations. A nil
// Attributes slice is rejected; an empty one is fine.
type ProductVariationRequest struct {
	Sku        string                         `json:"sku" validate:"required"`
	Price      float64                        `json:"price" validate:"gte=0"`
	Stock      int                            `json:"stock" validate:"gte=0"`
	ImageURL   string                         `json:"imageUrl"`
	Attributes []ProductVariationAttributeDTO `json:"attributes"`
}

// ProductVariationAttributeDTO carries an attribute on the wire, both in
// requests and responses.
type ProductVariationAttributeDTO struct {
	AttributeName  string `json:"attributeName"`
	AttributeValue string `json:"attributeValue"`
}

// StockUpdateRequest sets a variation's stock to an absolute value.
type StockUpdateRequest struct {
	Stock *int `json:"stock" validate:"required"`
}

// PriceUpdateRequest sets a variation's price.
type PriceUpdateRequest struct {
	Price *float64 `json:"price" validate:"required"`
}

// PurchaseRequest decrements a variation's stock by Quantity.
type PurchaseRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// ProductResponse is the read projection of a product. Brand and category are
// denormalized to their names.
type ProductResponse struct {
	ID           int64                      `json:"id"`
	Name         string                     `json:"name"`
	Description  string                     `json:"description"`
	BrandName    string                     `json:"brandName"`
	CategoryName string                     `json:"categoryName"`
	Variations   []ProductVariationResponse `json:"variations"`
}

// ProductVariationResponse is the read projection of a variation.
type ProductVariationResponse struct {
	ID         int64                          `json:"id"`
	Sku        string                         `json:"sku"`
	Price      float64                        `json:"price"`
	Stock      int                            `json:"stock"`
	ImageURL   string                         `json:"imageUrl"`
	Attributes []ProductVariationAttributeDTO `json:"attributes"`
}
