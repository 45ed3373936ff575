package repository

import (
	"context"

	"catalog-backend/internal/domains/product/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RepositoryInterface defines all data access operations for the Product
// domain.
type RepositoryInterface interface {
	// Create inserts a new product. The UNIQUE slug constraint and the
	// supplier FK are checked by the database inside the insert, so two
	// concurrent creates with the same derived slug serialize to one
	// winner; the loser gets model.ErrSlugTaken. A dangling supplier_id
	// yields model.ErrSupplierMissing.
	Create(ctx context.Context, product *model.Product) (*model.Product, error)

	// CreateWithTx is Create inside an existing transaction; used by the
	// supplier quick-create path.
	CreateWithTx(ctx context.Context, tx pgx.Tx, product *model.Product) (*model.Product, error)

	// GetByID retrieves a product with its supplier name. Cached with a
	// short TTL. Returns nil when not found.
	GetByID(ctx context.Context, id uuid.UUID) (*model.ProductWithSupplier, error)

	// GetBySlug retrieves a product by its slug. Returns nil when not found.
	GetBySlug(ctx context.Context, slug string) (*model.ProductWithSupplier, error)

	// SlugExists reports whether another product (excluding excludeID)
	// already owns slug. Pass uuid.Nil to exclude nothing.
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)

	// List retrieves products matching the filter plus the total count.
	List(ctx context.Context, filter *model.ProductFilter) ([]*model.ProductWithSupplier, int, error)

	// Update rewrites every mutable field. Slug is deliberately not in the
	// SET list: it survives renames. Same constraint mapping as Create.
	Update(ctx context.Context, product *model.Product) (*model.Product, error)

	// Delete removes one product. Returns model.ErrProductNotFound when the
	// id does not resolve.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteMany removes a batch in one transaction and returns the count.
	// Unknown ids fail the whole batch.
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int, error)
}
