package catalog

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrNameRequired  = errors.New("name is required")
	ErrNameTooLong   = errors.New("name must be 255 characters or less")
	ErrNegativePrice = errors.New("price must not be negative")
	ErrBadStatus     = errors.New("status must be Available or Not Available")
)

// MenuItemInput carries the admin form fields for create and update.
type MenuItemInput struct {
	Name       string
	Price      decimal.Decimal
	Status     Status
	CategoryID *int64
	Image      string
}

func (in MenuItemInput) Validate() error {
	if in.Name == "" {
		return ErrNameRequired
	}
	if len(in.Name) > 255 {
		return ErrNameTooLong
	}
	if in.Price.IsNegative() {
		return ErrNegativePrice
	}
	if !in.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrBadStatus, in.Status)
	}
	return nil
}
