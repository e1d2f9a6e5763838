package receipt

import (
	"fmt"
	"strings"

	"menu-kiosk/internal/orders"
)

const divider = "-------------------------"

// Payload renders the plain-text order summary that gets encoded into
// the receipt QR image.
func Payload(o *orders.Order, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order: %s\n", o.OrderNumber)
	fmt.Fprintf(&b, "Table: %s\n", o.TableNumber)
	b.WriteString(divider + "\n")
	for _, it := range o.Items {
		fmt.Fprintf(&b, "%dx %s - %s%s\n", it.Quantity, it.Name, currency, it.Total().StringFixed(2))
	}
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "TOTAL: %s%s", currency, o.TotalAmount.StringFixed(2))
	return b.String()
}
