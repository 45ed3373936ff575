package repository

import (
	"context"

	"catalog-backend/internal/domains/supplier/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RepositoryInterface defines all data access operations for the Supplier
// domain.
type RepositoryInterface interface {
	// Create inserts a new supplier and returns it with the generated ID.
	Create(ctx context.Context, supplier *model.Supplier) (*model.Supplier, error)

	// CreateWithTx inserts a supplier inside an existing transaction.
	// Used by the product quick-create path so supplier and product
	// commit or roll back together.
	CreateWithTx(ctx context.Context, tx pgx.Tx, supplier *model.Supplier) (*model.Supplier, error)

	// GetByID retrieves a supplier by ID. Returns nil when not found.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Supplier, error)

	// List retrieves suppliers ordered by creation time, newest first.
	// search filters case-insensitively on name and contact_person.
	List(ctx context.Context, search string, offset, limit int) ([]*model.Supplier, error)

	// Count returns the number of suppliers matching search.
	Count(ctx context.Context, search string) (int, error)

	// Update rewrites the mutable fields. Returns model.ErrSupplierNotFound
	// when the id does not resolve.
	Update(ctx context.Context, id uuid.UUID, supplier *model.Supplier) (*model.Supplier, error)

	// Delete removes the supplier and every product referencing it in one
	// transaction. No orphaned product is observable at any point.
	Delete(ctx context.Context, id uuid.UUID) (*model.DeleteResult, error)

	// DeleteMany cascades Delete over a batch of ids in a single
	// transaction. Unknown ids fail the whole batch.
	DeleteMany(ctx context.Context, ids []uuid.UUID) (*model.DeleteResult, error)
}
