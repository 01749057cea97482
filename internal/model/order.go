package model

import (
	"time"

	"shop-api/internal/validation"
)

// Order status choices.
const (
	StatusNew       = "New"
	StatusInProcess = "In Process"
	StatusSent      = "Sent"
	StatusCompleted = "Completed"
)

// StatusChoices lists the valid order statuses.
var StatusChoices = []string{StatusNew, StatusInProcess, StatusSent, StatusCompleted}

// Order represents a purchase record linking one customer to a set of
// products. Date is set on creation and never updated afterwards.
type Order struct {
	ID         string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	CustomerID string    `json:"customer" gorm:"type:varchar(36);not null;index"`
	Products   []Product `json:"products" gorm:"many2many:order_products"`
	Date       time.Time `json:"date" gorm:"autoCreateTime"`
	Status     string    `json:"status" gorm:"type:varchar(20);not null"`
}

// Validate checks the field constraints before the order is persisted.
func (o *Order) Validate() error {
	errs := validation.NewErrors()
	if o.CustomerID == "" {
		errs.Add("customer", validation.MsgRequired)
	}
	if o.Status == "" {
		errs.Add("status", validation.MsgRequired)
	} else {
		validation.OneOf(errs, "status", o.Status, StatusChoices)
	}
	return errs.OrNil()
}

// TotalPrice sums the current prices of the associated products. It is
// always recomputed from live product state, never cached.
func (o *Order) TotalPrice() float64 {
	total := 0.0
	for _, p := range o.Products {
		total += p.Price
	}
	return total
}

// IsFulfilled reports whether every associated product is available.
// An order with no products counts as fulfilled.
func (o *Order) IsFulfilled() bool {
	for _, p := range o.Products {
		if !p.Available {
			return false
		}
	}
	return true
}

// OrderResponse is the wire representation of an order. Products are
// nested in full and total_order_price is read-only, derived on read.
type OrderResponse struct {
	ID              string    `json:"id"`
	Customer        string    `json:"customer"`
	Products        []Product `json:"products"`
	Date            time.Time `json:"date"`
	Status          string    `json:"status"`
	TotalOrderPrice float64   `json:"total_order_price"`
}

// NewOrderResponse builds the wire representation from a loaded order.
func NewOrderResponse(o *Order) OrderResponse {
	products := o.Products
	if products == nil {
		products = []Product{}
	}
	return OrderResponse{
		ID:              o.ID,
		Customer:        o.CustomerID,
		Products:        products,
		Date:            o.Date,
		Status:          o.Status,
		TotalOrderPrice: o.TotalPrice(),
	}
}

// OrderRequest is the create / full update request body. Products holds
// product ids; the response nests the full objects.
type OrderRequest struct {
	Customer string   `json:"customer"`
	Products []string `json:"products"`
	Status   string   `json:"status"`
}

// OrderPatchRequest carries only the fields present in a partial update
type OrderPatchRequest struct {
	Customer *string   `json:"customer"`
	Products *[]string `json:"products"`
	Status   *string   `json:"status"`
}

// Empty reports whether no updatable field was supplied.
func (r *OrderPatchRequest) Empty() bool {
	return r.Customer == nil && r.Products == nil && r.Status == nil
}
