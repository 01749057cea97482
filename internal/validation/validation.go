// Package validation provides the field validators shared by the model
// layer and the request handlers. Validators are plain functions that
// record failures into an Errors map, so callers decide how to surface
// them (per-field map on the REST surface, flat text on the legacy one).
package validation

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Messages kept identical across both write surfaces.
const (
	MsgRequired      = "This field is required."
	MsgBlank         = "This field may not be blank."
	MsgPositivePrice = "Price must be positive."
	MsgEmptyUpdate   = "At least one field is required for update."

	// NonFieldErrors is the key used for failures not tied to a single field.
	NonFieldErrors = "non_field_errors"
)

// Errors is a per-field validation error map.
type Errors map[string][]string

// NewErrors creates an empty error map.
func NewErrors() Errors {
	return Errors{}
}

// Add records a failure message for a field.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// OrNil returns the map as an error, or nil when no failure was recorded.
func (e Errors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Error renders the map as a single line, fields in stable order.
func (e Errors) Error() string {
	return e.Flatten()
}

// Flatten renders "field: message" pairs joined with "; ", the format the
// legacy endpoints return.
func (e Errors) Flatten() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(e))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e[field], " ")))
	}
	return strings.Join(parts, "; ")
}

// RequireText checks a required text field: present, non-blank and within
// maxLen characters.
func RequireText(errs Errors, field, value string, maxLen int) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, MsgBlank)
		return
	}
	if maxLen > 0 && len(value) > maxLen {
		errs.Add(field, fmt.Sprintf("Ensure this field has no more than %d characters.", maxLen))
	}
}

// PositivePrice rejects zero and negative prices.
func PositivePrice(errs Errors, field string, price float64) {
	if price <= 0 {
		errs.Add(field, MsgPositivePrice)
	}
}

// OneOf checks an enumerated field against its allowed literals.
func OneOf(errs Errors, field, value string, choices []string) {
	for _, choice := range choices {
		if value == choice {
			return
		}
	}
	errs.Add(field, fmt.Sprintf("%q is not a valid choice.", value))
}

// RoundPrice rounds to the nearest cent.
func RoundPrice(price float64) float64 {
	return math.Round(price*100) / 100
}
