package kitchen

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	"menu-kiosk/internal/orders"
	"menu-kiosk/internal/redisx"
)

// Service consumes confirmed-order events and prints kitchen tickets.
type Service struct {
	Redis       *redis.Client
	ServiceName string
}

// HandleOrderConfirmed is wired as the consumer handler.
func (s *Service) HandleOrderConfirmed(ctx context.Context, m kafkago.Message) error {
	var env orders.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != orders.EventOrderConfirmed {
		return nil
	}

	// dedup on event id so a redelivered message prints one ticket
	dkey := fmt.Sprintf(redisx.KeyDedup, s.ServiceName, env.EventID)
	if exists, _ := redisx.Exists(ctx, s.Redis, dkey); exists {
		return nil
	}
	_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()

	var p orders.OrderConfirmedPayload
	if err := json.Unmarshal(env.Payload, &p); err != nil {
		return err
	}

	var lines []string
	for _, it := range p.Items {
		lines = append(lines, fmt.Sprintf("%dx %s", it.Quantity, it.Name))
	}
	log.Printf("ticket %s table=%s total=%s: %s",
		p.OrderNumber, p.TableNumber, p.TotalAmount, strings.Join(lines, ", "))
	return nil
}
