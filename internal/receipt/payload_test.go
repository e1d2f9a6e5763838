package receipt

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"menu-kiosk/internal/orders"
)

func fixtureOrder() *orders.Order {
	return &orders.Order{
		OrderNumber: "ORD-7K2Q9X",
		TableNumber: "042",
		TotalAmount: decimal.RequireFromString("25.50"),
		Status:      orders.StatusConfirmed,
		Items: []orders.OrderItem{
			{Name: "Sisig", Quantity: 2, Price: decimal.RequireFromString("10.00")},
			{Name: "Halo-halo", Quantity: 1, Price: decimal.RequireFromString("5.50")},
		},
	}
}

func TestPayload(t *testing.T) {
	got := Payload(fixtureOrder(), "₱")

	want := strings.Join([]string{
		"Order: ORD-7K2Q9X",
		"Table: 042",
		"-------------------------",
		"2x Sisig - ₱20.00",
		"1x Halo-halo - ₱5.50",
		"-------------------------",
		"TOTAL: ₱25.50",
	}, "\n")
	if got != want {
		t.Fatalf("payload mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestPayloadTotalMatchesOrderTotal(t *testing.T) {
	o := fixtureOrder()
	got := Payload(o, "P")
	if !strings.HasSuffix(got, "TOTAL: P"+o.TotalAmount.StringFixed(2)) {
		t.Fatalf("payload must end with the order total, got:\n%s", got)
	}
}
