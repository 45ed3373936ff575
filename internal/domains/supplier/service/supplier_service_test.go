package service_test

import (
	"context"
	"testing"
	"time"

	"catalog-backend/internal/domains/supplier/model"
	"catalog-backend/internal/domains/supplier/service"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSupplierRepository is a mock implementation of the supplier repository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) Create(ctx context.Context, supplier *model.Supplier) (*model.Supplier, error) {
	args := m.Called(ctx, supplier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) CreateWithTx(ctx context.Context, tx pgx.Tx, supplier *model.Supplier) (*model.Supplier, error) {
	args := m.Called(ctx, tx, supplier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) List(ctx context.Context, search string, offset, limit int) ([]*model.Supplier, error) {
	args := m.Called(ctx, search, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Count(ctx context.Context, search string) (int, error) {
	args := m.Called(ctx, search)
	return args.Int(0), args.Error(1)
}

func (m *MockSupplierRepository) Update(ctx context.Context, id uuid.UUID, supplier *model.Supplier) (*model.Supplier, error) {
	args := m.Called(ctx, id, supplier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id uuid.UUID) (*model.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeleteResult), args.Error(1)
}

func (m *MockSupplierRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) (*model.DeleteResult, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeleteResult), args.Error(1)
}

func strPtr(s string) *string { return &s }

func TestSupplierCreate_NormalizesFields(t *testing.T) {
	repo := new(MockSupplierRepository)
	svc := service.NewSupplierService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *model.Supplier) bool {
		return s.Name == "CV Sumber Rejeki" &&
			s.Email != nil && *s.Email == "sales@sumberrejeki.id" &&
			s.Phone == nil
	})).Return(&model.Supplier{
		ID:        uuid.New(),
		Name:      "CV Sumber Rejeki",
		Email:     strPtr("sales@sumberrejeki.id"),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil)

	resp, err := svc.Create(context.Background(), &model.SupplierRequest{
		Name:  "  CV Sumber Rejeki  ",
		Email: strPtr(" Sales@SumberRejeki.ID "),
		Phone: strPtr("   "),
	})

	require.NoError(t, err)
	assert.Equal(t, "CV Sumber Rejeki", resp.Name)
	repo.AssertExpectations(t)
}

func TestSupplierCreate_CollectsAllFieldErrors(t *testing.T) {
	repo := new(MockSupplierRepository)
	svc := service.NewSupplierService(repo)

	_, err := svc.Create(context.Background(), &model.SupplierRequest{
		Name:  "",
		Email: strPtr("not-an-email"),
	})

	require.Error(t, err)
	verrs, ok := err.(validation.Errors)
	require.True(t, ok, "expected field-level validation errors, got %T", err)
	assert.Contains(t, verrs, "name")
	assert.Contains(t, verrs, "email")
	repo.AssertNotCalled(t, "Create")
}

func TestSupplierGet_NotFound(t *testing.T) {
	repo := new(MockSupplierRepository)
	svc := service.NewSupplierService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, nil)

	_, err := svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, model.ErrSupplierNotFound)
}

func TestSupplierList_ClampsPagination(t *testing.T) {
	repo := new(MockSupplierRepository)
	svc := service.NewSupplierService(repo)

	repo.On("Count", mock.Anything, "").Return(1, nil)
	// page 0 / page_size 0 must clamp to page 1 with the default size
	repo.On("List", mock.Anything, "", 0, 10).Return([]*model.Supplier{
		{ID: uuid.New(), Name: "Solo Supplier"},
	}, nil)

	results, total, err := svc.List(context.Background(), 0, 0, "")

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, results, 1)
	assert.Equal(t, "Solo Supplier", results[0].Name)
	repo.AssertExpectations(t)
}

func TestSupplierDelete_ReportsCascade(t *testing.T) {
	repo := new(MockSupplierRepository)
	svc := service.NewSupplierService(repo)

	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(&model.DeleteResult{
		SuppliersDeleted: 1,
		ProductsDeleted:  3,
	}, nil)

	result, err := svc.Delete(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, 1, result.SuppliersDeleted)
	assert.Equal(t, 3, result.ProductsDeleted)
}

func TestSupplierDelete_NotFound(t *testing.T) {
	repo := new(MockSupplierRepository)
	svc := service.NewSupplierService(repo)

	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(nil, model.ErrSupplierNotFound)

	_, err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, model.ErrSupplierNotFound)
}

func TestSupplierDeleteMany_RejectsEmptyBatch(t *testing.T) {
	repo := new(MockSupplierRepository)
	svc := service.NewSupplierService(repo)

	_, err := svc.DeleteMany(context.Background(), nil)

	require.Error(t, err)
	verrs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, verrs, "ids")
	repo.AssertNotCalled(t, "DeleteMany")
}
