package service

import (
	"context"

	"catalog-backend/internal/domains/product/model"

	"github.com/google/uuid"
)

// ServiceInterface holds the product business logic consumed by the HTTP
// layer.
type ServiceInterface interface {
	Create(ctx context.Context, req *model.CreateProductRequest) (*model.ProductResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*model.ProductResponse, error)
	GetBySlug(ctx context.Context, slug string) (*model.ProductResponse, error)
	List(ctx context.Context, filter *model.ProductFilter) ([]*model.ProductResponse, int, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateProductRequest) (*model.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int, error)
}
