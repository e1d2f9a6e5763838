package orders

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const StatusConfirmed Status = "confirmed"

type Order struct {
	ID          int64
	OrderNumber string
	TableNumber string
	TotalAmount decimal.Decimal
	Status      Status
	// QRCode is the storage path of the receipt image; empty until the
	// receipt has been generated.
	QRCode    string
	CreatedAt time.Time
	UpdatedAt time.Time
	Items     []OrderItem
}

// OrderItem carries the quantity and snapshot price of one cart line at
// confirmation time. Name is joined in from menu_items for display and
// the receipt; the price field is never refreshed from the catalog.
type OrderItem struct {
	ID         int64
	OrderID    int64
	MenuItemID int64
	Name       string
	Quantity   int
	Price      decimal.Decimal
}

func (it OrderItem) Total() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}
