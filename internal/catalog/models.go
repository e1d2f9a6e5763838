package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusAvailable    Status = "Available"
	StatusNotAvailable Status = "Not Available"
)

func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusNotAvailable
}

type Category struct {
	ID   int64
	Name string
}

type MenuItem struct {
	ID         int64
	Name       string
	Price      decimal.Decimal
	Status     Status
	CategoryID *int64
	Image      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
