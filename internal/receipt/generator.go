package receipt

import (
	"context"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"menu-kiosk/internal/orders"
	"menu-kiosk/internal/storage"
)

const qrSize = 300

// Generator encodes order summaries into QR images and writes them to
// file storage. The path is derived from the order number, so a rerun
// for the same order overwrites rather than duplicates.
type Generator struct {
	Files    *storage.Disk
	Currency string
}

func (g *Generator) Generate(_ context.Context, o *orders.Order) (string, error) {
	png, err := qrcode.Encode(Payload(o, g.Currency), qrcode.Medium, qrSize)
	if err != nil {
		return "", fmt.Errorf("encode receipt qr: %w", err)
	}
	return g.Files.Put(fmt.Sprintf("receipts/%s.png", o.OrderNumber), png)
}
