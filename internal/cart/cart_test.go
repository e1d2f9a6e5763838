package cart

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAddSameItemIncrementsQuantity(t *testing.T) {
	c := &Cart{}
	price := decimal.RequireFromString("120.00")
	for i := 0; i < 5; i++ {
		c.Add(1, "Sisig", price, "menu_images/sisig.png")
	}

	if len(c.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(c.Lines))
	}
	if got := c.Lines[0].Quantity; got != 5 {
		t.Fatalf("expected quantity 5, got %d", got)
	}
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	c := &Cart{}
	c.Add(2, "Halo-halo", decimal.RequireFromString("95.00"), "")
	c.Add(1, "Sisig", decimal.RequireFromString("120.00"), "")
	c.Add(2, "Halo-halo", decimal.RequireFromString("95.00"), "")

	if c.Lines[0].MenuItemID != 2 || c.Lines[1].MenuItemID != 1 {
		t.Fatalf("unexpected line order: %+v", c.Lines)
	}
}

func TestRemoveThenAddResetsQuantity(t *testing.T) {
	c := &Cart{}
	price := decimal.RequireFromString("80.00")
	c.Add(1, "Lumpia", price, "")
	c.Add(1, "Lumpia", price, "")
	c.Add(1, "Lumpia", price, "")

	if err := c.Remove(1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	c.Add(1, "Lumpia", price, "")

	if got := c.Lines[0].Quantity; got != 1 {
		t.Fatalf("expected quantity reset to 1, got %d", got)
	}
}

func TestUpdate(t *testing.T) {
	c := &Cart{}
	c.Add(1, "Adobo", decimal.RequireFromString("150.00"), "")

	t.Run("sets quantity", func(t *testing.T) {
		if err := c.Update(1, 4); err != nil {
			t.Fatalf("update: %v", err)
		}
		if got := c.Lines[0].Quantity; got != 4 {
			t.Fatalf("expected quantity 4, got %d", got)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		if err := c.Update(99, 2); !errors.Is(err, ErrLineNotFound) {
			t.Fatalf("expected ErrLineNotFound, got %v", err)
		}
	})

	t.Run("rejects quantity below 1", func(t *testing.T) {
		for _, qty := range []int{0, -3} {
			if err := c.Update(1, qty); !errors.Is(err, ErrBadQuantity) {
				t.Fatalf("qty %d: expected ErrBadQuantity, got %v", qty, err)
			}
		}
		if got := c.Lines[0].Quantity; got != 4 {
			t.Fatalf("rejected update must not mutate, quantity is %d", got)
		}
	})
}

func TestRemoveUnknownItem(t *testing.T) {
	c := &Cart{}
	if err := c.Remove(7); !errors.Is(err, ErrLineNotFound) {
		t.Fatalf("expected ErrLineNotFound, got %v", err)
	}
}

func TestTotal(t *testing.T) {
	c := &Cart{}
	c.Add(1, "Sisig", decimal.RequireFromString("10.00"), "")
	c.Add(1, "Sisig", decimal.RequireFromString("10.00"), "")
	c.Add(2, "Halo-halo", decimal.RequireFromString("5.50"), "")

	want := decimal.RequireFromString("25.50")
	if got := c.Total(); !got.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, got)
	}
}

func TestEmptyCartTotalIsZero(t *testing.T) {
	c := &Cart{}
	if !c.IsEmpty() {
		t.Fatal("new cart should be empty")
	}
	if !c.Total().IsZero() {
		t.Fatalf("expected zero total, got %s", c.Total())
	}
}
