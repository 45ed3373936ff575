package repository

import (
	"context"
	"fmt"

	productRepo "catalog-backend/internal/domains/product/repository"
	"catalog-backend/internal/domains/supplier/model"
	"catalog-backend/pkg/cache"
	"catalog-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const supplierColumns = "id, name, contact_person, email, phone, address, created_at, updated_at"

// cascadeTxFunc is the body of a cascade delete, run inside one transaction.
type cascadeTxFunc func(tx pgx.Tx) (*model.DeleteResult, error)

// postgresRepository implements RepositoryInterface with raw SQL over
// pgxpool. runTx is a seam: production binds it to the pool's transaction
// helper, tests substitute a fake.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
	runTx func(ctx context.Context, fn cascadeTxFunc) (*model.DeleteResult, error)
}

func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache) RepositoryInterface {
	r := &postgresRepository{
		pool:  pool,
		cache: c,
	}
	r.runTx = func(ctx context.Context, fn cascadeTxFunc) (*model.DeleteResult, error) {
		return database.WithTransactionResult(ctx, pool, fn)
	}
	return r
}

func scanSupplier(row pgx.Row) (*model.Supplier, error) {
	var sup model.Supplier
	err := row.Scan(
		&sup.ID,
		&sup.Name,
		&sup.ContactPerson,
		&sup.Email,
		&sup.Phone,
		&sup.Address,
		&sup.CreatedAt,
		&sup.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sup, nil
}

func (r *postgresRepository) Create(ctx context.Context, supplier *model.Supplier) (*model.Supplier, error) {
	query := `
    INSERT INTO suppliers (name, contact_person, email, phone, address, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
    RETURNING ` + supplierColumns

	created, err := scanSupplier(r.pool.QueryRow(ctx, query,
		supplier.Name, supplier.ContactPerson, supplier.Email, supplier.Phone, supplier.Address))
	if err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) CreateWithTx(ctx context.Context, tx pgx.Tx, supplier *model.Supplier) (*model.Supplier, error) {
	query := `
    INSERT INTO suppliers (name, contact_person, email, phone, address, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
    RETURNING ` + supplierColumns

	created, err := scanSupplier(tx.QueryRow(ctx, query,
		supplier.Name, supplier.ContactPerson, supplier.Email, supplier.Phone, supplier.Address))
	if err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`

	sup, err := scanSupplier(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get supplier by id: %w", err)
	}
	return sup, nil
}

func (r *postgresRepository) List(ctx context.Context, search string, offset, limit int) ([]*model.Supplier, error) {
	query := `
    SELECT ` + supplierColumns + `
    FROM suppliers
    WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR contact_person ILIKE '%' || $1 || '%')
    ORDER BY created_at DESC
    LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []*model.Supplier
	for rows.Next() {
		sup, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		suppliers = append(suppliers, sup)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", err)
	}

	return suppliers, nil
}

func (r *postgresRepository) Count(ctx context.Context, search string) (int, error) {
	query := `
    SELECT COUNT(*) FROM suppliers
    WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR contact_person ILIKE '%' || $1 || '%')`

	var count int
	if err := r.pool.QueryRow(ctx, query, search).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count suppliers: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, supplier *model.Supplier) (*model.Supplier, error) {
	query := `
    UPDATE suppliers
    SET name = $1, contact_person = $2, email = $3, phone = $4, address = $5, updated_at = NOW()
    WHERE id = $6
    RETURNING ` + supplierColumns

	updated, err := scanSupplier(r.pool.QueryRow(ctx, query,
		supplier.Name, supplier.ContactPerson, supplier.Email, supplier.Phone, supplier.Address, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, model.ErrSupplierNotFound
		}
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}
	return updated, nil
}

// Delete removes the supplier's products and then the supplier itself in
// one transaction. The FK's ON DELETE CASCADE is a backstop; deleting the
// products explicitly lets us report counts and invalidate their cache keys.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (*model.DeleteResult, error) {
	return r.DeleteMany(ctx, []uuid.UUID{id})
}

func (r *postgresRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) (*model.DeleteResult, error) {
	result, err := r.runTx(ctx, func(tx pgx.Tx) (*model.DeleteResult, error) {
		res := &model.DeleteResult{}

		for _, id := range ids {
			rows, err := tx.Query(ctx, `DELETE FROM products WHERE supplier_id = $1 RETURNING id`, id)
			if err != nil {
				return nil, fmt.Errorf("failed to delete products of supplier: %w", err)
			}
			for rows.Next() {
				var productID uuid.UUID
				if err := rows.Scan(&productID); err != nil {
					rows.Close()
					return nil, fmt.Errorf("failed to scan deleted product id: %w", err)
				}
				res.ProductIDs = append(res.ProductIDs, productID)
			}
			rows.Close()
			if err := rows.Err(); err != nil {
				return nil, fmt.Errorf("error iterating deleted product ids: %w", err)
			}

			tag, err := tx.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
			if err != nil {
				return nil, fmt.Errorf("failed to delete supplier: %w", err)
			}
			if tag.RowsAffected() == 0 {
				return nil, model.ErrSupplierNotFound
			}
			res.SuppliersDeleted++
		}

		res.ProductsDeleted = len(res.ProductIDs)
		return res, nil
	})
	if err != nil {
		return nil, err
	}

	// Cascaded products may still be cached. Best effort: a failed
	// invalidation only means a stale entry until TTL.
	if len(result.ProductIDs) > 0 {
		keys := make([]string, len(result.ProductIDs))
		for i, pid := range result.ProductIDs {
			keys[i] = productRepo.CacheKey(pid)
		}
		_ = r.cache.Delete(ctx, keys...)
	}

	return result, nil
}
