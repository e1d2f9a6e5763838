package orders

import (
	"crypto/rand"
)

const (
	orderNumberPrefix = "ORD-"
	suffixLen         = 6
	suffixCharset     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewOrderNumber returns "ORD-" plus a 6-character random uppercase
// alphanumeric suffix. Collisions are possible; the repo's unique index
// on order_number is the backstop and the caller retries on it.
func NewOrderNumber() string {
	buf := make([]byte, suffixLen)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand never fails on supported platforms
	}
	for i, b := range buf {
		buf[i] = suffixCharset[int(b)%len(suffixCharset)]
	}
	return orderNumberPrefix + string(buf)
}
