package model

import (
	supplierModel "catalog-backend/internal/domains/supplier/model"
	"catalog-backend/internal/shared/utils"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest is the create-form payload. Exactly one of
// SupplierID or Supplier must be present: Supplier is the inline
// quick-create path, mirroring the admin form's "create supplier from
// here" option.
type CreateProductRequest struct {
	SupplierID  *uuid.UUID                                `json:"supplier_id,omitempty"`
	Supplier    *supplierModel.SupplierQuickCreateRequest `json:"supplier,omitempty"`
	Name        string                                    `json:"name"`
	Description *string                                   `json:"description,omitempty"`
	Price       float64                                   `json:"price"`
	Stock       *int                                      `json:"stock,omitempty"`     // default 0
	Image       *string                                   `json:"image,omitempty"`     // reference returned by the upload endpoint
	IsActive    *bool                                     `json:"is_active,omitempty"` // default true
}

// Validate collects all field violations of the submission at once.
func (r CreateProductRequest) Validate() error {
	errs := validation.Errors{}

	structErr := validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255).Error("name must be 1-255 characters"),
			validation.By(nameSluggable),
		),
		validation.Field(&r.Price,
			validation.Min(0.0).Error("price must not be negative"),
			validation.By(priceTwoDecimals),
		),
		validation.Field(&r.Stock,
			validation.Min(0).Error("stock must not be negative"),
		),
	)
	mergeErrors(errs, structErr)

	switch {
	case r.SupplierID == nil && r.Supplier == nil:
		errs["supplier_id"] = validation.NewError(
			"validation_required", "supplier_id or an inline supplier is required")
	case r.SupplierID != nil && r.Supplier != nil:
		errs["supplier_id"] = validation.NewError(
			"validation_conflict", "provide either supplier_id or an inline supplier, not both")
	case r.Supplier != nil:
		if err := r.Supplier.Validate(); err != nil {
			if verrs, ok := err.(validation.Errors); ok {
				for field, ferr := range verrs {
					errs["supplier."+field] = ferr
				}
			} else {
				return err
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateProductRequest is the edit-form payload. The slug is deliberately
// absent: it is fixed at creation and survives renames.
type UpdateProductRequest struct {
	SupplierID  uuid.UUID `json:"supplier_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       *int      `json:"stock"`
	Image       *string   `json:"image,omitempty"`
	IsActive    *bool     `json:"is_active"`
}

func (r UpdateProductRequest) Validate() error {
	errs := validation.Errors{}

	structErr := validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255).Error("name must be 1-255 characters"),
		),
		validation.Field(&r.Price,
			validation.Min(0.0).Error("price must not be negative"),
			validation.By(priceTwoDecimals),
		),
		validation.Field(&r.Stock,
			validation.NotNil.Error("stock is required"),
			validation.Min(0).Error("stock must not be negative"),
		),
		validation.Field(&r.IsActive,
			validation.NotNil.Error("is_active is required"),
		),
	)
	mergeErrors(errs, structErr)

	if r.SupplierID == uuid.Nil {
		errs["supplier_id"] = validation.NewError(
			"validation_required", "supplier_id is required")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// nameSluggable rejects names that derive to an empty slug, i.e. names
// without a single alphanumeric character. There is no fallback slug.
func nameSluggable(value interface{}) error {
	name, _ := value.(string)
	if name == "" {
		return nil // Required already covers this
	}
	if utils.Slugify(name) == "" {
		return validation.NewError(
			"validation_name_sluggable", "name must contain at least one alphanumeric character")
	}
	return nil
}

// priceTwoDecimals enforces at most 2 fractional digits.
func priceTwoDecimals(value interface{}) error {
	price, _ := value.(float64)
	d := decimal.NewFromFloat(price)
	if !d.Equal(d.Round(2)) {
		return validation.NewError(
			"validation_price_precision", "price must have at most 2 decimal places")
	}
	return nil
}

func mergeErrors(dst validation.Errors, err error) {
	if err == nil {
		return
	}
	if verrs, ok := err.(validation.Errors); ok {
		for field, ferr := range verrs {
			dst[field] = ferr
		}
	}
}

// ProductFilter narrows and orders the list view.
type ProductFilter struct {
	SupplierID *uuid.UUID
	IsActive   *bool
	Search     string // case-insensitive match on name
	SortBy     string // name | price | stock | created_at
	SortOrder  string // asc | desc
	Page       int
	PageSize   int
}

// Normalize clamps pagination and defaults the sort to newest-first.
func (f *ProductFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 10
	}
	if f.SortBy == "" {
		f.SortBy = "created_at"
	}
	if f.SortOrder != "asc" && f.SortOrder != "desc" {
		f.SortOrder = "desc"
	}
}

func (f *ProductFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}
