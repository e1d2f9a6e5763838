package orders

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	tableNumberKey = "last_table_number"
	maxTableNumber = 999
)

// TableAllocator hands out sequential table numbers as fixed-width
// 3-digit strings, wrapping from 999 back to 001.
type TableAllocator interface {
	NextTableNumber(ctx context.Context) (string, error)
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// allocateTableNumber bumps the counter singleton in a single statement:
// the row is created on first use, and there is no read-then-write
// window for two confirmations to race through. Runs on the pool or on
// an open transaction.
func allocateTableNumber(ctx context.Context, q rowQuerier) (string, error) {
	var v int
	err := q.QueryRow(ctx, `
		INSERT INTO settings (key, value) VALUES ($1, 1)
		ON CONFLICT (key) DO UPDATE
		SET value = CASE WHEN settings.value >= $2 THEN 1 ELSE settings.value + 1 END
		RETURNING value`, tableNumberKey, maxTableNumber).Scan(&v)
	if err != nil {
		return "", fmt.Errorf("allocate table number: %w", err)
	}
	return FormatTableNumber(v), nil
}

func FormatTableNumber(n int) string { return fmt.Sprintf("%03d", n) }

// PGAllocator allocates outside a confirmation transaction, e.g. for a
// standalone counter bump.
type PGAllocator struct{ DB *pgxpool.Pool }

func (a *PGAllocator) NextTableNumber(ctx context.Context) (string, error) {
	return allocateTableNumber(ctx, a.DB)
}

// MemAllocator mirrors the database counter semantics in memory. Used in
// tests and anywhere a database-free allocator is handy.
type MemAllocator struct {
	mu   sync.Mutex
	last int
}

func (a *MemAllocator) NextTableNumber(_ context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.last++
	if a.last > maxTableNumber {
		a.last = 1
	}
	return FormatTableNumber(a.last), nil
}
