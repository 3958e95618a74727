package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/inventory-service/internal/domain"
)

// FeatureRepository reads administratively managed feature flags and pages.
// The core only reads; mutation belongs to the admin surface.
type FeatureRepository interface {
	ListEnabledFlags(ctx context.Context) ([]domain.FeatureFlag, error)
	ListEnabledPages(ctx context.Context) ([]domain.PageDescriptor, error)
}

type featureRepository struct {
	pool *pgxpool.Pool
}

// NewFeatureRepository returns a Postgres-backed implementation.
func NewFeatureRepository(pool *pgxpool.Pool) FeatureRepository {
	return &featureRepository{pool: pool}
}

func (r *featureRepository) ListEnabledFlags(ctx context.Context) ([]domain.FeatureFlag, error) {
	const query = `
        SELECT id, key, name, enabled, category, required_role, sort_order
        FROM feature_flags
        WHERE enabled = TRUE
        ORDER BY category, sort_order, name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var flags []domain.FeatureFlag
	for rows.Next() {
		var flag domain.FeatureFlag
		if err := rows.Scan(
			&flag.ID,
			&flag.Key,
			&flag.Name,
			&flag.Enabled,
			&flag.Category,
			&flag.RequiredRole,
			&flag.SortOrder,
		); err != nil {
			return nil, err
		}
		flags = append(flags, flag)
	}
	return flags, rows.Err()
}

func (r *featureRepository) ListEnabledPages(ctx context.Context) ([]domain.PageDescriptor, error) {
	const query = `
        SELECT id, key, name, path, enabled, category, sort_order
        FROM pages
        WHERE enabled = TRUE
        ORDER BY category, sort_order, name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []domain.PageDescriptor
	for rows.Next() {
		var page domain.PageDescriptor
		if err := rows.Scan(
			&page.ID,
			&page.Key,
			&page.Name,
			&page.Path,
			&page.Enabled,
			&page.Category,
			&page.SortOrder,
		); err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}
