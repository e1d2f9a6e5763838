package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"menu-kiosk/internal/redisx"
)

// Store keeps one cart per kiosk session in Redis. Each request loads,
// mutates and saves the cart; sessions never share a cart.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store { return &Store{rdb: rdb} }

// Load returns the session's cart, or an empty cart when none is stored.
func (s *Store) Load(ctx context.Context, session string) (*Cart, error) {
	key := fmt.Sprintf(redisx.KeySessionCart, session)
	b, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return &Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	var c Cart
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return &c, nil
}

func (s *Store) Save(ctx context.Context, session string, c *Cart) error {
	key := fmt.Sprintf(redisx.KeySessionCart, session)
	b, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.rdb.Set(ctx, key, b, redisx.TTLSessionCart).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context, session string) error {
	key := fmt.Sprintf(redisx.KeySessionCart, session)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
