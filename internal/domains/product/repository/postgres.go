package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"catalog-backend/internal/domains/product/model"
	"catalog-backend/pkg/cache"
	"catalog-backend/pkg/database"
	"catalog-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	productCacheKeyPrefix = "product:"
	productCacheTTL       = 5 * time.Minute

	productColumns = "id, supplier_id, name, slug, description, price, stock, image, is_active, created_at, updated_at"
)

// sortColumns whitelists the sortable list columns; anything else falls
// back to created_at.
var sortColumns = map[string]string{
	"name":       "p.name",
	"price":      "p.price",
	"stock":      "p.stock",
	"created_at": "p.created_at",
}

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache) RepositoryInterface {
	return &postgresRepository{
		pool:  pool,
		cache: c,
	}
}

// CacheKey is the cache key for a product id. Exported because the supplier
// repository invalidates product entries when a cascade delete removes them.
func CacheKey(id uuid.UUID) string {
	return productCacheKeyPrefix + id.String()
}

// mapWriteError translates constraint violations into domain errors.
// 23505 = unique_violation (slug), 23503 = foreign_key_violation (supplier).
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return model.ErrSlugTaken
		case "23503":
			return model.ErrSupplierMissing
		}
	}
	return err
}

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(
		&p.ID,
		&p.SupplierID,
		&p.Name,
		&p.Slug,
		&p.Description,
		&p.Price,
		&p.Stock,
		&p.Image,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProductWithSupplier(row pgx.Row) (*model.ProductWithSupplier, error) {
	var p model.ProductWithSupplier
	err := row.Scan(
		&p.ID,
		&p.SupplierID,
		&p.Name,
		&p.Slug,
		&p.Description,
		&p.Price,
		&p.Stock,
		&p.Image,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.SupplierName,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	return r.insert(ctx, r.pool, product)
}

func (r *postgresRepository) CreateWithTx(ctx context.Context, tx pgx.Tx, product *model.Product) (*model.Product, error) {
	return r.insert(ctx, tx, product)
}

// querier is satisfied by both pgxpool.Pool and pgx.Tx.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *postgresRepository) insert(ctx context.Context, q querier, product *model.Product) (*model.Product, error) {
	query := `
    INSERT INTO products (supplier_id, name, slug, description, price, stock, image, is_active, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
    RETURNING ` + productColumns

	created, err := scanProduct(q.QueryRow(ctx, query,
		product.SupplierID,
		product.Name,
		product.Slug,
		product.Description,
		product.Price,
		product.Stock,
		product.Image,
		product.IsActive,
	))
	if err != nil {
		if mapped := mapWriteError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ProductWithSupplier, error) {
	key := CacheKey(id)
	if data, err := r.cache.Get(ctx, key); err == nil && data != nil {
		var cached model.ProductWithSupplier
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	query := `
    SELECT p.id, p.supplier_id, p.name, p.slug, p.description, p.price, p.stock,
           p.image, p.is_active, p.created_at, p.updated_at, s.name AS supplier_name
    FROM products p
    JOIN suppliers s ON s.id = p.supplier_id
    WHERE p.id = $1`

	product, err := scanProductWithSupplier(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by id: %w", err)
	}

	if data, err := json.Marshal(product); err == nil {
		if err := r.cache.Set(ctx, key, data, productCacheTTL); err != nil {
			logger.Error("product cache write failed", err)
		}
	}

	return product, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*model.ProductWithSupplier, error) {
	query := `
    SELECT p.id, p.supplier_id, p.name, p.slug, p.description, p.price, p.stock,
           p.image, p.is_active, p.created_at, p.updated_at, s.name AS supplier_name
    FROM products p
    JOIN suppliers s ON s.id = p.supplier_id
    WHERE p.slug = $1`

	product, err := scanProductWithSupplier(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by slug: %w", err)
	}
	return product, nil
}

func (r *postgresRepository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM products WHERE slug = $1 AND id <> $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

// buildWhereClause assembles the filter conditions with positional args.
func buildWhereClause(filter *model.ProductFilter) (string, []interface{}) {
	where := "1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.SupplierID != nil {
		where += fmt.Sprintf(" AND p.supplier_id = $%d", argIndex)
		args = append(args, *filter.SupplierID)
		argIndex++
	}
	if filter.IsActive != nil {
		where += fmt.Sprintf(" AND p.is_active = $%d", argIndex)
		args = append(args, *filter.IsActive)
		argIndex++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(" AND p.name ILIKE '%%' || $%d || '%%'", argIndex)
		args = append(args, filter.Search)
		argIndex++
	}

	return where, args
}

func (r *postgresRepository) List(ctx context.Context, filter *model.ProductFilter) ([]*model.ProductWithSupplier, int, error) {
	filter.Normalize()
	where, args := buildWhereClause(filter)

	countQuery := `SELECT COUNT(*) FROM products p WHERE ` + where
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	sortColumn, ok := sortColumns[filter.SortBy]
	if !ok {
		sortColumn = "p.created_at"
	}
	direction := "DESC"
	if filter.SortOrder == "asc" {
		direction = "ASC"
	}

	query := fmt.Sprintf(`
    SELECT p.id, p.supplier_id, p.name, p.slug, p.description, p.price, p.stock,
           p.image, p.is_active, p.created_at, p.updated_at, s.name AS supplier_name
    FROM products p
    JOIN suppliers s ON s.id = p.supplier_id
    WHERE %s
    ORDER BY %s %s
    LIMIT $%d OFFSET $%d`,
		where, sortColumn, direction, len(args)+1, len(args)+2)

	args = append(args, filter.PageSize, filter.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*model.ProductWithSupplier
	for rows.Next() {
		p, err := scanProductWithSupplier(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating product rows: %w", err)
	}

	return products, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	// slug intentionally absent from SET: fixed at creation.
	query := `
    UPDATE products
    SET supplier_id = $1, name = $2, description = $3, price = $4, stock = $5,
        image = $6, is_active = $7, updated_at = NOW()
    WHERE id = $8
    RETURNING ` + productColumns

	updated, err := scanProduct(r.pool.QueryRow(ctx, query,
		product.SupplierID,
		product.Name,
		product.Description,
		product.Price,
		product.Stock,
		product.Image,
		product.IsActive,
		product.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProductNotFound
		}
		if mapped := mapWriteError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	_ = r.cache.Delete(ctx, CacheKey(product.ID))

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	_ = r.cache.Delete(ctx, CacheKey(id))

	return nil
}

func (r *postgresRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) (int, error) {
	deleted, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int, error) {
		count := 0
		for _, id := range ids {
			tag, err := tx.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
			if err != nil {
				return 0, fmt.Errorf("failed to delete product: %w", err)
			}
			if tag.RowsAffected() == 0 {
				return 0, model.ErrProductNotFound
			}
			count++
		}
		return count, nil
	})
	if err != nil {
		return 0, err
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = CacheKey(id)
	}
	_ = r.cache.Delete(ctx, keys...)

	return deleted, nil
}
