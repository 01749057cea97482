package model

import (
	"shop-api/internal/validation"

	"gorm.io/gorm"
)

// Product represents a catalog item
type Product struct {
	ID        string  `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name      string  `json:"name" gorm:"type:varchar(255);not null"`
	Price     float64 `json:"price" gorm:"not null"`
	Available bool    `json:"available" gorm:"default:true"`
}

// Validate checks the field constraints before the product is persisted.
func (p *Product) Validate() error {
	errs := validation.NewErrors()
	validation.RequireText(errs, "name", p.Name, 255)
	validation.PositivePrice(errs, "price", p.Price)
	return errs.OrNil()
}

// BeforeSave rounds the price to two decimal places on every save.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	p.Price = validation.RoundPrice(p.Price)
	return nil
}

// ProductRequest is the create / full update request body
type ProductRequest struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available *bool   `json:"available"`
}

// ProductPatchRequest carries only the fields present in a partial update
type ProductPatchRequest struct {
	Name      *string  `json:"name"`
	Price     *float64 `json:"price"`
	Available *bool    `json:"available"`
}

// Empty reports whether no updatable field was supplied.
func (r *ProductPatchRequest) Empty() bool {
	return r.Name == nil && r.Price == nil && r.Available == nil
}
