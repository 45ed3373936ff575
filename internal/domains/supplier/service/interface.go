package service

import (
	"context"

	"catalog-backend/internal/domains/supplier/model"

	"github.com/google/uuid"
)

// ServiceInterface holds the supplier business logic consumed by the HTTP
// layer.
type ServiceInterface interface {
	Create(ctx context.Context, req *model.SupplierRequest) (*model.SupplierResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*model.SupplierResponse, error)
	List(ctx context.Context, page, pageSize int, search string) ([]*model.SupplierResponse, int, error)
	Update(ctx context.Context, id uuid.UUID, req *model.SupplierRequest) (*model.SupplierResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.DeleteResult, error)
	DeleteMany(ctx context.Context, ids []uuid.UUID) (*model.DeleteResult, error)
}
