package model_test

import (
	"testing"

	"catalog-backend/internal/domains/product/model"
	supplierModel "catalog-backend/internal/domains/supplier/model"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) validation.Errors {
	t.Helper()
	require.Error(t, err)
	verrs, ok := err.(validation.Errors)
	require.True(t, ok, "expected validation.Errors, got %T", err)
	return verrs
}

func TestCreateProductRequest_CollectsAllViolations(t *testing.T) {
	supplierID := uuid.New()
	stock := -3
	req := model.CreateProductRequest{
		SupplierID: &supplierID,
		Name:       "",
		Price:      -1,
		Stock:      &stock,
	}

	verrs := fieldErrors(t, req.Validate())

	// every invalid field reported in one pass
	assert.Contains(t, verrs, "name")
	assert.Contains(t, verrs, "price")
	assert.Contains(t, verrs, "stock")
}

func TestCreateProductRequest_SupplierXOR(t *testing.T) {
	supplierID := uuid.New()

	t.Run("neither", func(t *testing.T) {
		req := model.CreateProductRequest{Name: "Widget", Price: 10}
		verrs := fieldErrors(t, req.Validate())
		assert.Contains(t, verrs, "supplier_id")
	})

	t.Run("both", func(t *testing.T) {
		req := model.CreateProductRequest{
			SupplierID: &supplierID,
			Supplier:   &supplierModel.SupplierQuickCreateRequest{Name: "Warung Baru"},
			Name:       "Widget",
			Price:      10,
		}
		verrs := fieldErrors(t, req.Validate())
		assert.Contains(t, verrs, "supplier_id")
	})

	t.Run("inline supplier validated", func(t *testing.T) {
		req := model.CreateProductRequest{
			Supplier: &supplierModel.SupplierQuickCreateRequest{Name: ""},
			Name:     "Widget",
			Price:    10,
		}
		verrs := fieldErrors(t, req.Validate())
		assert.Contains(t, verrs, "supplier.name")
	})
}

func TestCreateProductRequest_PricePrecision(t *testing.T) {
	supplierID := uuid.New()

	req := model.CreateProductRequest{
		SupplierID: &supplierID,
		Name:       "Widget",
		Price:      10.999,
	}
	verrs := fieldErrors(t, req.Validate())
	assert.Contains(t, verrs, "price")

	req.Price = 10.99
	assert.NoError(t, req.Validate())
}

func TestCreateProductRequest_NameMustBeSluggable(t *testing.T) {
	supplierID := uuid.New()
	req := model.CreateProductRequest{
		SupplierID: &supplierID,
		Name:       "!!! ---",
		Price:      10,
	}

	verrs := fieldErrors(t, req.Validate())
	assert.Contains(t, verrs, "name")
}

func TestUpdateProductRequest_RequiresExplicitStockAndActive(t *testing.T) {
	req := model.UpdateProductRequest{
		SupplierID: uuid.New(),
		Name:       "Widget",
		Price:      10,
	}

	verrs := fieldErrors(t, req.Validate())
	assert.Contains(t, verrs, "stock")
	assert.Contains(t, verrs, "is_active")
}

func TestUpdateProductRequest_ZeroValuesAreValid(t *testing.T) {
	stock := 0
	active := false
	req := model.UpdateProductRequest{
		SupplierID: uuid.New(),
		Name:       "Widget",
		Price:      0,
		Stock:      &stock,
		IsActive:   &active,
	}

	assert.NoError(t, req.Validate())
}

func TestProductFilter_Normalize(t *testing.T) {
	f := &model.ProductFilter{Page: -1, PageSize: 0, SortBy: "bogus; DROP TABLE", SortOrder: "sideways"}
	f.Normalize()

	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 10, f.PageSize)
	assert.Equal(t, "desc", f.SortOrder)
	assert.Equal(t, 0, f.Offset())
}
