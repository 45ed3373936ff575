package service

import (
	"context"
	"strings"

	"catalog-backend/internal/domains/supplier/model"
	"catalog-backend/internal/domains/supplier/repository"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type supplierService struct {
	repo repository.RepositoryInterface
}

func NewSupplierService(repo repository.RepositoryInterface) ServiceInterface {
	return &supplierService{repo: repo}
}

// normalize trims the request fields and drops optional fields that are
// effectively empty.
func normalize(req *model.SupplierRequest) *model.Supplier {
	sup := &model.Supplier{
		Name:          strings.TrimSpace(req.Name),
		ContactPerson: trimOptional(req.ContactPerson),
		Email:         lowerOptional(trimOptional(req.Email)),
		Phone:         trimOptional(req.Phone),
		Address:       trimOptional(req.Address),
	}
	return sup
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func lowerOptional(s *string) *string {
	if s == nil {
		return nil
	}
	lowered := strings.ToLower(*s)
	return &lowered
}

func (s *supplierService) Create(ctx context.Context, req *model.SupplierRequest) (*model.SupplierResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, normalize(req))
	if err != nil {
		return nil, err
	}
	return created.ToResponse(), nil
}

func (s *supplierService) Get(ctx context.Context, id uuid.UUID) (*model.SupplierResponse, error) {
	sup, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sup == nil {
		return nil, model.ErrSupplierNotFound
	}
	return sup.ToResponse(), nil
}

func (s *supplierService) List(ctx context.Context, page, pageSize int, search string) ([]*model.SupplierResponse, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	total, err := s.repo.Count(ctx, search)
	if err != nil {
		return nil, 0, err
	}

	suppliers, err := s.repo.List(ctx, search, offset, pageSize)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*model.SupplierResponse, len(suppliers))
	for i, sup := range suppliers {
		responses[i] = sup.ToResponse()
	}
	return responses, total, nil
}

func (s *supplierService) Update(ctx context.Context, id uuid.UUID, req *model.SupplierRequest) (*model.SupplierResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, normalize(req))
	if err != nil {
		return nil, err
	}
	return updated.ToResponse(), nil
}

func (s *supplierService) Delete(ctx context.Context, id uuid.UUID) (*model.DeleteResult, error) {
	return s.repo.Delete(ctx, id)
}

func (s *supplierService) DeleteMany(ctx context.Context, ids []uuid.UUID) (*model.DeleteResult, error) {
	if len(ids) == 0 {
		return nil, validation.Errors{"ids": validation.NewError("validation_required", "ids must not be empty")}
	}
	return s.repo.DeleteMany(ctx, ids)
}
