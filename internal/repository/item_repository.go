package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/inventory-service/internal/domain"
)

// ItemRepository defines persistence access for stocked items.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)
	AdjustQuantity(ctx context.Context, id string, delta int) (*domain.Item, error)
	StockByCategory(ctx context.Context) (map[string]int, error)
}

type itemRepository struct {
	pool *pgxpool.Pool
}

// NewItemRepository returns a Postgres-backed implementation.
func NewItemRepository(pool *pgxpool.Pool) ItemRepository {
	return &itemRepository{pool: pool}
}

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	const query = `
        INSERT INTO items (sku, name, category_id, location, quantity, unit)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		item.SKU,
		item.Name,
		item.CategoryID,
		item.Location,
		item.Quantity,
		item.Unit,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *itemRepository) Update(ctx context.Context, item *domain.Item) error {
	const query = `
        UPDATE items SET sku=$1, name=$2, category_id=$3, location=$4, quantity=$5, unit=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		item.SKU,
		item.Name,
		item.CategoryID,
		item.Location,
		item.Quantity,
		item.Unit,
		item.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM items WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *itemRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	const query = `
        SELECT id, sku, name, category_id, location, quantity, unit, created_at, updated_at
        FROM items WHERE id=$1`

	var item domain.Item
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.SKU,
		&item.Name,
		&item.CategoryID,
		&item.Location,
		&item.Quantity,
		&item.Unit,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) List(ctx context.Context) ([]domain.Item, error) {
	const query = `
        SELECT id, sku, name, category_id, location, quantity, unit, created_at, updated_at
        FROM items ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(
			&item.ID,
			&item.SKU,
			&item.Name,
			&item.CategoryID,
			&item.Location,
			&item.Quantity,
			&item.Unit,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// AdjustQuantity applies a relative stock movement and returns the updated row.
func (r *itemRepository) AdjustQuantity(ctx context.Context, id string, delta int) (*domain.Item, error) {
	const query = `
        UPDATE items SET quantity = quantity + $1, updated_at=NOW()
        WHERE id=$2
        RETURNING id, sku, name, category_id, location, quantity, unit, created_at, updated_at`

	var item domain.Item
	if err := r.pool.QueryRow(ctx, query, delta, id).Scan(
		&item.ID,
		&item.SKU,
		&item.Name,
		&item.CategoryID,
		&item.Location,
		&item.Quantity,
		&item.Unit,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

// StockByCategory aggregates total quantity per category name.
func (r *itemRepository) StockByCategory(ctx context.Context) (map[string]int, error) {
	const query = `
        SELECT COALESCE(c.name, 'uncategorized'), SUM(i.quantity)
        FROM items i
        LEFT JOIN categories c ON c.id = i.category_id
        GROUP BY c.name
        ORDER BY c.name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var name string
		var total int
		if err := rows.Scan(&name, &total); err != nil {
			return nil, err
		}
		totals[name] = total
	}
	return totals, rows.Err()
}
