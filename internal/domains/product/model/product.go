package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item sold by exactly one supplier.
//
// Slug is derived from Name once at creation and never recomputed: renaming
// a product keeps its slug, and the slug is not directly editable. Slug is
// globally unique across all products (UNIQUE constraint).
type Product struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	SupplierID  uuid.UUID       `json:"supplier_id" db:"supplier_id"`
	Name        string          `json:"name" db:"name"`
	Slug        string          `json:"slug" db:"slug"`
	Description *string         `json:"description,omitempty" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Stock       int             `json:"stock" db:"stock"`
	Image       *string         `json:"image,omitempty" db:"image"`
	IsActive    bool            `json:"is_active" db:"is_active"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// ProductWithSupplier carries the relational lookup the list/detail views
// need: the supplier's display name next to the product row.
type ProductWithSupplier struct {
	Product
	SupplierName string `json:"supplier_name" db:"supplier_name"`
}

type ProductResponse struct {
	ID           uuid.UUID       `json:"id"`
	SupplierID   uuid.UUID       `json:"supplier_id"`
	SupplierName string          `json:"supplier_name,omitempty"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Description  *string         `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	Image        *string         `json:"image,omitempty"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (p *Product) ToResponse() *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		SupplierID:  p.SupplierID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Image:       p.Image,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (p *ProductWithSupplier) ToResponse() *ProductResponse {
	resp := p.Product.ToResponse()
	resp.SupplierName = p.SupplierName
	return resp
}
