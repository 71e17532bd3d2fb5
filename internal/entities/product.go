package entities

import "time"

// ProductField names the scalar fields a product stores as ProductValue rows.
type ProductField string

const (
	ProductFieldName           ProductField = "name"
	ProductFieldSummary        ProductField = "summary"
	ProductFieldDescription    ProductField = "description"
	ProductFieldPrice          ProductField = "price"
	ProductFieldURL            ProductField = "url"
	ProductFieldImage          ProductField = "image"
	ProductFieldKeyword        ProductField = "keyword"
	ProductFieldBonus          ProductField = "bonus"
	ProductFieldSalesFrequency ProductField = "sales_frequency"
	ProductFieldSort           ProductField = "sort"
)

// Valid reports whether f is one of the known product fields.
func (f ProductField) Valid() bool {
	switch f {
	case ProductFieldName, ProductFieldSummary, ProductFieldDescription,
		ProductFieldPrice, ProductFieldURL, ProductFieldImage, ProductFieldKeyword,
		ProductFieldBonus, ProductFieldSalesFrequency, ProductFieldSort:
		return true
	}
	return false
}

type Product struct {
	ID           uint                 `gorm:"primaryKey" json:"id"`
	ExternalID   string               `gorm:"uniqueIndex;size:128" json:"external_id"` // Item id in the export
	Groups       string               `gorm:"size:512" json:"groups,omitempty"`        // Comma-separated usergroups the product is visible to
	Values       []ProductValue       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"values,omitempty"`
	Ordernumbers []ProductOrdernumber `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"ordernumbers,omitempty"`
	Attributes   []ProductAttribute   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"attributes,omitempty"`
	Properties   []ProductProperty    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"properties,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// ProductValue is one usergroup-scoped value of a product field. An empty
// Usergroup means the value applies to every usergroup.
type ProductValue struct {
	ID        uint         `gorm:"primaryKey" json:"-"`
	ProductID uint         `gorm:"index" json:"-"`
	Field     ProductField `gorm:"size:32;index" json:"field"`
	Usergroup string       `gorm:"size:64" json:"usergroup,omitempty"`
	Value     string       `gorm:"type:text" json:"value"`
	Position  int          `json:"-"`
}

type ProductOrdernumber struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	ProductID uint   `gorm:"index" json:"-"`
	Value     string `gorm:"size:128;index" json:"value"`
	Usergroup string `gorm:"size:64" json:"usergroup,omitempty"`
	Position  int    `json:"-"`
}

type ProductAttribute struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	ProductID uint   `gorm:"index" json:"-"`
	Key       string `gorm:"size:128" json:"key"`
	Value     string `gorm:"type:text" json:"value"`
	Usergroup string `gorm:"size:64" json:"usergroup,omitempty"`
	Position  int    `json:"-"`
}

type ProductProperty struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	ProductID uint   `gorm:"index" json:"-"`
	Key       string `gorm:"size:128" json:"key"`
	Value     string `gorm:"type:text" json:"value"`
	Usergroup string `gorm:"size:64" json:"usergroup,omitempty"`
	Position  int    `json:"-"`
}
