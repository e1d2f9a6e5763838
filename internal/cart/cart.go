package cart

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrLineNotFound = errors.New("item not found in cart")
	ErrBadQuantity  = errors.New("quantity must be at least 1")
)

// Line is one distinct menu item in the cart. Name, price and image are
// snapshotted when the item is first added, so an admin edit mid-session
// does not change what the customer already picked.
type Line struct {
	MenuItemID int64           `json:"menu_item_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Image      string          `json:"image"`
	Quantity   int             `json:"quantity"`
}

func (l Line) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the in-progress selection for one session. Lines keep
// insertion order for display; membership is keyed by menu item id.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Add increments the quantity when the item is already in the cart,
// otherwise appends a new line with quantity 1.
func (c *Cart) Add(itemID int64, name string, price decimal.Decimal, image string) {
	if l := c.find(itemID); l != nil {
		l.Quantity++
		return
	}
	c.Lines = append(c.Lines, Line{
		MenuItemID: itemID,
		Name:       name,
		Price:      price,
		Image:      image,
		Quantity:   1,
	})
}

func (c *Cart) Update(itemID int64, quantity int) error {
	l := c.find(itemID)
	if l == nil {
		return ErrLineNotFound
	}
	if quantity < 1 {
		return ErrBadQuantity
	}
	l.Quantity = quantity
	return nil
}

func (c *Cart) Remove(itemID int64) error {
	for i, l := range c.Lines {
		if l.MenuItemID == itemID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

func (c *Cart) IsEmpty() bool { return len(c.Lines) == 0 }

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Total())
	}
	return total
}

func (c *Cart) find(itemID int64) *Line {
	for i := range c.Lines {
		if c.Lines[i].MenuItemID == itemID {
			return &c.Lines[i]
		}
	}
	return nil
}
