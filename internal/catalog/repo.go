package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PageSize is the admin listing page length.
const PageSize = 5

var ErrNotFound = errors.New("not found")

type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) Categories(ctx context.Context) ([]Category, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) Category(ctx context.Context, id int64) (Category, error) {
	var c Category
	err := r.DB.QueryRow(ctx, `SELECT id, name FROM categories WHERE id=$1`, id).
		Scan(&c.ID, &c.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return Category{}, ErrNotFound
	}
	return c, err
}

// AvailableByCategory lists the items a kiosk customer may order from
// one category.
func (r *Repo) AvailableByCategory(ctx context.Context, categoryID int64) ([]MenuItem, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, name, price, status, category_id, COALESCE(image, ''), created_at, updated_at
		FROM menu_items
		WHERE category_id = $1 AND status = $2
		ORDER BY name`, categoryID, string(StatusAvailable))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMenuItems(rows)
}

func (r *Repo) MenuItem(ctx context.Context, id int64) (MenuItem, error) {
	var m MenuItem
	err := r.DB.QueryRow(ctx, `
		SELECT id, name, price, status, category_id, COALESCE(image, ''), created_at, updated_at
		FROM menu_items WHERE id=$1`, id).
		Scan(&m.ID, &m.Name, &m.Price, &m.Status, &m.CategoryID, &m.Image, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return MenuItem{}, ErrNotFound
	}
	return m, err
}

// ListMenuItems pages through the admin listing, applying the optional
// filter predicates. page starts at 1. Returns the page plus the total
// number of matching rows.
func (r *Repo) ListMenuItems(ctx context.Context, f Filter, page int) ([]MenuItem, int, error) {
	if page < 1 {
		page = 1
	}
	where, args := f.Where(1)

	var total int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	n := len(args)
	listArgs := append(args, PageSize, (page-1)*PageSize)
	rows, err := r.DB.Query(ctx, `
		SELECT id, name, price, status, category_id, COALESCE(image, ''), created_at, updated_at
		FROM menu_items`+where+
		fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", n+1, n+2), listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items, err := scanMenuItems(rows)
	return items, total, err
}

func (r *Repo) CreateMenuItem(ctx context.Context, in MenuItemInput) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	var id int64
	err := r.DB.QueryRow(ctx, `
		INSERT INTO menu_items (name, price, status, category_id, image)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING id`,
		in.Name, in.Price, string(in.Status), in.CategoryID, in.Image).Scan(&id)
	return id, err
}

func (r *Repo) UpdateMenuItem(ctx context.Context, id int64, in MenuItemInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	ct, err := r.DB.Exec(ctx, `
		UPDATE menu_items
		SET name=$2, price=$3, status=$4, category_id=$5,
		    image=COALESCE(NULLIF($6, ''), image), updated_at=now()
		WHERE id=$1`,
		id, in.Name, in.Price, string(in.Status), in.CategoryID, in.Image)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) DeleteMenuItem(ctx context.Context, id int64) error {
	ct, err := r.DB.Exec(ctx, `DELETE FROM menu_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanMenuItems(rows pgx.Rows) ([]MenuItem, error) {
	var out []MenuItem
	for rows.Next() {
		var m MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Price, &m.Status, &m.CategoryID, &m.Image, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
