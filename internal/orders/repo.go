package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"menu-kiosk/internal/cart"
)

var ErrNotFound = errors.New("order not found")

type Repo struct{ DB *pgxpool.Pool }

// CreateConfirmed persists one confirmed order with its line items in a
// single transaction. The table-number counter is bumped on the same
// transaction, so a failed confirmation never consumes a number.
func (r *Repo) CreateConfirmed(ctx context.Context, orderNumber string, lines []cart.Line) (int64, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tableNumber, err := allocateTableNumber(ctx, tx)
	if err != nil {
		return 0, err
	}

	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Total())
	}

	var orderID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (order_number, table_number, total_amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		orderNumber, tableNumber, total, string(StatusConfirmed)).Scan(&orderID)
	if err != nil {
		return 0, err
	}

	for _, l := range lines {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, quantity, price)
			VALUES ($1, $2, $3, $4)`,
			orderID, l.MenuItemID, l.Quantity, l.Price)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return orderID, nil
}

// OrderWithItems loads an order together with its items and each item's
// menu-item name.
func (r *Repo) OrderWithItems(ctx context.Context, id int64) (*Order, error) {
	var o Order
	var qr *string
	err := r.DB.QueryRow(ctx, `
		SELECT id, order_number, table_number, total_amount, status, qr_code, created_at, updated_at
		FROM orders WHERE id=$1`, id).
		Scan(&o.ID, &o.OrderNumber, &o.TableNumber, &o.TotalAmount, &o.Status, &qr, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if qr != nil {
		o.QRCode = *qr
	}

	rows, err := r.DB.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.menu_item_id, mi.name, oi.quantity, oi.price
		FROM order_items oi
		JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE oi.order_id = $1
		ORDER BY oi.id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.MenuItemID, &it.Name, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repo) SetReceiptPath(ctx context.Context, id int64, path string) error {
	ct, err := r.DB.Exec(ctx,
		`UPDATE orders SET qr_code=$2, updated_at=now() WHERE id=$1`, id, path)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// RecalculateTotal re-sums the order's items into total_amount. Not part
// of the confirmation flow; kept for post-creation item adjustments.
func (r *Repo) RecalculateTotal(ctx context.Context, id int64) error {
	ct, err := r.DB.Exec(ctx, `
		UPDATE orders
		SET total_amount = COALESCE(
			(SELECT SUM(price * quantity) FROM order_items WHERE order_id = $1), 0),
		    updated_at = now()
		WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("recalculate total: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
