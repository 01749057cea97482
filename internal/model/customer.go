package model

import "shop-api/internal/validation"

// Customer represents a buyer. A customer owns its orders: deleting a
// customer deletes every order that references it.
type Customer struct {
	ID      string `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name    string `json:"name" gorm:"type:varchar(100);not null"`
	Address string `json:"address" gorm:"type:text;not null"`
}

// Validate checks the field constraints before the customer is persisted.
func (c *Customer) Validate() error {
	errs := validation.NewErrors()
	validation.RequireText(errs, "name", c.Name, 100)
	validation.RequireText(errs, "address", c.Address, 0)
	return errs.OrNil()
}

// CustomerRequest is the create / full update request body
type CustomerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// CustomerPatchRequest carries only the fields present in a partial update
type CustomerPatchRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

// Empty reports whether no updatable field was supplied.
func (r *CustomerPatchRequest) Empty() bool {
	return r.Name == nil && r.Address == nil
}
