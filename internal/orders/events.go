package orders

import (
	"encoding/json"
	"time"
)

const EventOrderConfirmed = "OrderConfirmed"

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"` // order number
	Payload       json.RawMessage `json:"payload"`
}

type TicketItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type OrderConfirmedPayload struct {
	OrderID     int64        `json:"order_id"`
	OrderNumber string       `json:"order_number"`
	TableNumber string       `json:"table_number"`
	Items       []TicketItem `json:"items"`
	TotalAmount string       `json:"total_amount"` // 2dp decimal string
}
