package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Supplier is the master-data record products reference. It is a leaf
// entity: nothing above it, products below it via supplier_id.
type Supplier struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	ContactPerson *string   `json:"contact_person,omitempty" db:"contact_person"`
	Email         *string   `json:"email,omitempty" db:"email"`
	Phone         *string   `json:"phone,omitempty" db:"phone"`
	Address       *string   `json:"address,omitempty" db:"address"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// SupplierRequest is the create/update form payload.
type SupplierRequest struct {
	Name          string  `json:"name"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
}

// Validate collects every field violation of the submission into a single
// validation.Errors map instead of failing on the first one.
func (r SupplierRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255).Error("name must be 1-255 characters"),
		),
		validation.Field(&r.ContactPerson,
			validation.Length(0, 255).Error("contact_person must not exceed 255 characters"),
		),
		validation.Field(&r.Email,
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Phone,
			validation.Length(0, 50).Error("phone must not exceed 50 characters"),
		),
	)
}

// SupplierQuickCreateRequest is the minimal inline form offered while
// creating or editing a product: name plus optional email.
type SupplierQuickCreateRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}

func (r SupplierQuickCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255).Error("name must be 1-255 characters"),
		),
		validation.Field(&r.Email,
			is.Email.Error("invalid email format"),
		),
	)
}

type SupplierResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ContactPerson *string   `json:"contact_person,omitempty"`
	Email         *string   `json:"email,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	Address       *string   `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (s *Supplier) ToResponse() *SupplierResponse {
	return &SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// DeleteResult reports what a cascade delete removed.
type DeleteResult struct {
	SuppliersDeleted int         `json:"suppliers_deleted"`
	ProductsDeleted  int         `json:"products_deleted"`
	ProductIDs       []uuid.UUID `json:"-"`
}
