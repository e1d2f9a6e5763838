package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"menu-kiosk/internal/redisx"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Level   string `json:"level"` // success | error
	Message string `json:"message"`
}

func setFlash(ctx context.Context, rdb *redis.Client, session, level, message string) {
	key := fmt.Sprintf(redisx.KeyFlash, session)
	b, _ := json.Marshal(Flash{Level: level, Message: message})
	_ = rdb.Set(ctx, key, b, redisx.TTLFlash).Err()
}

// popFlash reads and clears the session's flash, if any.
func popFlash(ctx context.Context, rdb *redis.Client, session string) *Flash {
	key := fmt.Sprintf(redisx.KeyFlash, session)
	b, err := rdb.GetDel(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) || err != nil {
		return nil
	}
	var f Flash
	if json.Unmarshal(b, &f) != nil {
		return nil
	}
	return &f
}
