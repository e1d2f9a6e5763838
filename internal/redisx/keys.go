package redisx

import "time"

const (
	// Session cart: cart:{session_id} -> JSON cart
	KeySessionCart = "cart:%s"

	// Read-once flash message: flash:{session_id} -> JSON {level, message}
	KeyFlash = "flash:%s"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLSessionCart = 24 * time.Hour
	TTLFlash       = 10 * time.Minute
	TTLDedup       = 48 * time.Hour
)
