package service

import (
	"context"
	"errors"
	"strings"

	"catalog-backend/internal/domains/product/model"
	"catalog-backend/internal/domains/product/repository"
	supplierModel "catalog-backend/internal/domains/supplier/model"
	supplierRepo "catalog-backend/internal/domains/supplier/repository"
	"catalog-backend/internal/shared/utils"
	"catalog-backend/pkg/database"
	"catalog-backend/pkg/logger"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ImageRemover releases stored image objects that are no longer referenced
// by any product. Satisfied by storage.MinIOStorage.
type ImageRemover interface {
	Remove(ctx context.Context, reference string) error
}

type productService struct {
	repo      repository.RepositoryInterface
	suppliers supplierRepo.RepositoryInterface
	tx        database.Runner
	images    ImageRemover
}

func NewProductService(
	repo repository.RepositoryInterface,
	suppliers supplierRepo.RepositoryInterface,
	tx database.Runner,
	images ImageRemover,
) ServiceInterface {
	return &productService{
		repo:      repo,
		suppliers: suppliers,
		tx:        tx,
		images:    images,
	}
}

// Create derives the slug from the name (creation is the only time a slug
// is ever computed), verifies the relational invariants, and inserts. With
// an inline supplier payload, supplier and product are created in one
// transaction so neither exists without the other.
func (s *productService) Create(ctx context.Context, req *model.CreateProductRequest) (*model.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	slug := utils.Slugify(name)

	verrs := validation.Errors{}
	supplierName := ""

	if req.SupplierID != nil {
		sup, err := s.suppliers.GetByID(ctx, *req.SupplierID)
		if err != nil {
			return nil, err
		}
		if sup == nil {
			verrs["supplier_id"] = validation.NewError(
				"validation_supplier_missing", "the specified supplier does not exist")
		} else {
			supplierName = sup.Name
		}
	}

	// Friendly pre-check; the UNIQUE constraint is the authority under
	// concurrency (see the race mapping below).
	taken, err := s.repo.SlugExists(ctx, slug, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		verrs["slug"] = validation.NewError(
			"validation_slug_taken", "a product with this slug already exists")
	}

	if len(verrs) > 0 {
		return nil, verrs
	}

	product := &model.Product{
		Name:     name,
		Slug:     slug,
		Price:    decimal.NewFromFloat(req.Price).Round(2),
		IsActive: true,
	}
	product.Description = req.Description
	product.Image = req.Image
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	var created *model.Product

	if req.Supplier != nil {
		// Quick-create: the new supplier's id is assigned to the product
		// inside the same transaction.
		err = s.tx(ctx, func(tx pgx.Tx) error {
			sup, err := s.suppliers.CreateWithTx(ctx, tx, &supplierModel.Supplier{
				Name:  strings.TrimSpace(req.Supplier.Name),
				Email: normalizeEmail(req.Supplier.Email),
			})
			if err != nil {
				return err
			}
			supplierName = sup.Name

			product.SupplierID = sup.ID
			created, err = s.repo.CreateWithTx(ctx, tx, product)
			return err
		})
	} else {
		product.SupplierID = *req.SupplierID
		created, err = s.repo.Create(ctx, product)
	}

	if err != nil {
		return nil, mapRaceError(err)
	}

	resp := created.ToResponse()
	resp.SupplierName = supplierName
	return resp, nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*model.ProductResponse, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}
	return product.ToResponse(), nil
}

func (s *productService) GetBySlug(ctx context.Context, slug string) (*model.ProductResponse, error) {
	product, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}
	return product.ToResponse(), nil
}

func (s *productService) List(ctx context.Context, filter *model.ProductFilter) ([]*model.ProductResponse, int, error) {
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*model.ProductResponse, len(products))
	for i, p := range products {
		responses[i] = p.ToResponse()
	}
	return responses, total, nil
}

// Update rewrites every mutable field but preserves the stored slug
// verbatim: renaming a product never regenerates it.
func (s *productService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateProductRequest) (*model.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, model.ErrProductNotFound
	}

	supplierName := existing.SupplierName
	if req.SupplierID != existing.SupplierID {
		sup, err := s.suppliers.GetByID(ctx, req.SupplierID)
		if err != nil {
			return nil, err
		}
		if sup == nil {
			return nil, model.FieldError("supplier_id",
				"validation_supplier_missing", "the specified supplier does not exist")
		}
		supplierName = sup.Name
	}

	product := &model.Product{
		ID:          id,
		SupplierID:  req.SupplierID,
		Name:        strings.TrimSpace(req.Name),
		Slug:        existing.Slug,
		Description: req.Description,
		Price:       decimal.NewFromFloat(req.Price).Round(2),
		Stock:       *req.Stock,
		Image:       req.Image,
		IsActive:    *req.IsActive,
	}

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, mapRaceError(err)
	}

	// The replaced image object is now orphaned; release it.
	if existing.Image != nil && (req.Image == nil || *req.Image != *existing.Image) {
		s.removeImage(ctx, *existing.Image)
	}

	resp := updated.ToResponse()
	resp.SupplierName = supplierName
	return resp, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return model.ErrProductNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if existing.Image != nil {
		s.removeImage(ctx, *existing.Image)
	}
	return nil
}

// removeImage is best effort: a leftover object costs storage, not
// correctness.
func (s *productService) removeImage(ctx context.Context, reference string) {
	if err := s.images.Remove(ctx, reference); err != nil {
		logger.Warn("orphaned product image cleanup failed", err)
	}
}

func (s *productService) DeleteMany(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, validation.Errors{"ids": validation.NewError("validation_required", "ids must not be empty")}
	}
	return s.repo.DeleteMany(ctx, ids)
}

// mapRaceError folds constraint violations from a lost race back into the
// same field-level validation errors a pre-check produces.
func mapRaceError(err error) error {
	switch {
	case errors.Is(err, model.ErrSlugTaken):
		return model.FieldError("slug",
			"validation_slug_taken", "a product with this slug already exists")
	case errors.Is(err, model.ErrSupplierMissing):
		return model.FieldError("supplier_id",
			"validation_supplier_missing", "the specified supplier does not exist")
	}
	return err
}

func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	normalized := strings.ToLower(strings.TrimSpace(*email))
	if normalized == "" {
		return nil
	}
	return &normalized
}
