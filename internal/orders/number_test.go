package orders

import (
	"regexp"
	"testing"
)

func TestNewOrderNumberFormat(t *testing.T) {
	re := regexp.MustCompile(`^ORD-[A-Z0-9]{6}$`)
	for i := 0; i < 100; i++ {
		n := NewOrderNumber()
		if !re.MatchString(n) {
			t.Fatalf("order number %q does not match ORD-[A-Z0-9]{6}", n)
		}
	}
}
