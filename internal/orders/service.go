package orders

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	kafkago "github.com/segmentio/kafka-go"

	"menu-kiosk/internal/cart"
	kafkax "menu-kiosk/internal/kafka"
)

var ErrEmptyCart = errors.New("cart is empty")

// maxNumberAttempts bounds the retry loop on order-number collisions.
const maxNumberAttempts = 3

type store interface {
	CreateConfirmed(ctx context.Context, orderNumber string, lines []cart.Line) (int64, error)
	OrderWithItems(ctx context.Context, id int64) (*Order, error)
	SetReceiptPath(ctx context.Context, id int64, path string) error
}

type receiptGenerator interface {
	Generate(ctx context.Context, o *Order) (string, error)
}

type publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

// Service runs the order confirmation workflow.
type Service struct {
	Store       store
	Receipts    receiptGenerator
	Producer    publisher // optional; nil disables events
	ServiceName string
}

// Confirm drains cartLines into one persisted order: table number and
// order + items are written in a single transaction, then the receipt
// image is generated and the confirmed event published. The caller
// clears the session cart after a nil error.
func (s *Service) Confirm(ctx context.Context, lines []cart.Line) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	var orderID int64
	var err error
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		orderID, err = s.Store.CreateConfirmed(ctx, NewOrderNumber(), lines)
		if !isUniqueViolation(err) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	order, err := s.Store.OrderWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// A receipt failure does not void the sale: the order stands with no
	// receipt path and can be regenerated later.
	if path, rerr := s.Receipts.Generate(ctx, order); rerr != nil {
		log.Printf("receipt generation failed for %s: %v", order.OrderNumber, rerr)
	} else if uerr := s.Store.SetReceiptPath(ctx, orderID, path); uerr != nil {
		log.Printf("store receipt path for %s: %v", order.OrderNumber, uerr)
	} else {
		order.QRCode = path
	}

	s.publishConfirmed(order)
	return order, nil
}

func (s *Service) publishConfirmed(o *Order) {
	if s.Producer == nil {
		return
	}
	items := make([]TicketItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, TicketItem{Name: it.Name, Quantity: it.Quantity})
	}
	ev := Envelope{
		EventID:       uuid.NewString(),
		EventType:     EventOrderConfirmed,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.ServiceName,
		CorrelationID: o.OrderNumber,
		Payload: kafkax.MustMarshal(OrderConfirmedPayload{
			OrderID:     o.ID,
			OrderNumber: o.OrderNumber,
			TableNumber: o.TableNumber,
			Items:       items,
			TotalAmount: o.TotalAmount.StringFixed(2),
		}),
	}
	s.Producer.Publish(PartitionKey(o.OrderNumber), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(EventOrderConfirmed)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
