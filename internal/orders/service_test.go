package orders

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"menu-kiosk/internal/cart"
)

type fakeStore struct {
	alloc     MemAllocator
	nextID    int64
	orders    map[int64]*Order
	createErr []error // popped per CreateConfirmed call
	creates   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{orders: map[int64]*Order{}}
}

func (f *fakeStore) CreateConfirmed(ctx context.Context, orderNumber string, lines []cart.Line) (int64, error) {
	f.creates++
	if len(f.createErr) > 0 {
		err := f.createErr[0]
		f.createErr = f.createErr[1:]
		if err != nil {
			return 0, err
		}
	}
	table, _ := f.alloc.NextTableNumber(ctx)
	f.nextID++
	o := &Order{
		ID:          f.nextID,
		OrderNumber: orderNumber,
		TableNumber: table,
		Status:      StatusConfirmed,
		TotalAmount: decimal.Zero,
	}
	for _, l := range lines {
		o.Items = append(o.Items, OrderItem{
			OrderID:    o.ID,
			MenuItemID: l.MenuItemID,
			Name:       l.Name,
			Quantity:   l.Quantity,
			Price:      l.Price,
		})
		o.TotalAmount = o.TotalAmount.Add(l.Total())
	}
	f.orders[o.ID] = o
	return o.ID, nil
}

func (f *fakeStore) OrderWithItems(_ context.Context, id int64) (*Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeStore) SetReceiptPath(_ context.Context, id int64, path string) error {
	o, ok := f.orders[id]
	if !ok {
		return ErrNotFound
	}
	o.QRCode = path
	return nil
}

type fakeReceipts struct {
	err   error
	calls int
}

func (f *fakeReceipts) Generate(_ context.Context, o *Order) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("receipts/%s.png", o.OrderNumber), nil
}

type fakePublisher struct {
	published [][]byte
}

func (f *fakePublisher) Publish(_, value []byte, _ ...kafkago.Header) {
	f.published = append(f.published, value)
}

func twoLines() []cart.Line {
	return []cart.Line{
		{MenuItemID: 1, Name: "Sisig", Price: decimal.RequireFromString("10.00"), Quantity: 2},
		{MenuItemID: 2, Name: "Halo-halo", Price: decimal.RequireFromString("5.50"), Quantity: 1},
	}
}

func TestConfirmEmptyCart(t *testing.T) {
	store := newFakeStore()
	svc := &Service{Store: store, Receipts: &fakeReceipts{}, ServiceName: "test"}

	_, err := svc.Confirm(context.Background(), nil)
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if store.creates != 0 {
		t.Fatalf("empty cart must not create an order, creates=%d", store.creates)
	}
}

func TestConfirmTotalsAndSnapshots(t *testing.T) {
	store := newFakeStore()
	pub := &fakePublisher{}
	svc := &Service{Store: store, Receipts: &fakeReceipts{}, Producer: pub, ServiceName: "test"}

	order, err := svc.Confirm(context.Background(), twoLines())
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}

	if want := decimal.RequireFromString("25.50"); !order.TotalAmount.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, order.TotalAmount)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(order.Items))
	}
	if !order.Items[0].Price.Equal(decimal.RequireFromString("10.00")) ||
		!order.Items[1].Price.Equal(decimal.RequireFromString("5.50")) {
		t.Fatalf("snapshot prices wrong: %s, %s", order.Items[0].Price, order.Items[1].Price)
	}
	if order.TableNumber != "001" {
		t.Fatalf("expected first table number 001, got %s", order.TableNumber)
	}
	if order.Status != StatusConfirmed {
		t.Fatalf("expected status confirmed, got %s", order.Status)
	}
	if want := "receipts/" + order.OrderNumber + ".png"; order.QRCode != want {
		t.Fatalf("expected receipt path %s, got %s", want, order.QRCode)
	}
	if len(pub.published) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(pub.published))
	}
}

func TestConfirmReceiptFailureKeepsOrder(t *testing.T) {
	store := newFakeStore()
	rec := &fakeReceipts{err: errors.New("encoder broke")}
	svc := &Service{Store: store, Receipts: rec, ServiceName: "test"}

	order, err := svc.Confirm(context.Background(), twoLines())
	if err != nil {
		t.Fatalf("confirm should survive a receipt failure, got %v", err)
	}
	if order.QRCode != "" {
		t.Fatalf("expected empty receipt path, got %q", order.QRCode)
	}
	if stored := store.orders[order.ID]; stored.QRCode != "" {
		t.Fatalf("stored order must not carry a receipt path, got %q", stored.QRCode)
	}
}

func TestConfirmRetriesOrderNumberCollision(t *testing.T) {
	store := newFakeStore()
	store.createErr = []error{&pgconn.PgError{Code: "23505"}, nil}
	svc := &Service{Store: store, Receipts: &fakeReceipts{}, ServiceName: "test"}

	if _, err := svc.Confirm(context.Background(), twoLines()); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if store.creates != 2 {
		t.Fatalf("expected a retry after the unique violation, creates=%d", store.creates)
	}
}

func TestConfirmGivesUpAfterRepeatedCollisions(t *testing.T) {
	store := newFakeStore()
	dup := &pgconn.PgError{Code: "23505"}
	store.createErr = []error{dup, dup, dup}
	svc := &Service{Store: store, Receipts: &fakeReceipts{}, ServiceName: "test"}

	_, err := svc.Confirm(context.Background(), twoLines())
	if err == nil {
		t.Fatal("expected an error after exhausting retries")
	}
	if store.creates != maxNumberAttempts {
		t.Fatalf("expected %d attempts, got %d", maxNumberAttempts, store.creates)
	}
}
