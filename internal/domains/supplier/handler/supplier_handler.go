package handler

import (
	"net/http"
	"strconv"

	"catalog-backend/internal/domains/supplier/model"
	"catalog-backend/internal/domains/supplier/service"
	"catalog-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SupplierHandler handles HTTP requests for the supplier domain.
type SupplierHandler struct {
	service service.ServiceInterface
}

func NewSupplierHandler(svc service.ServiceInterface) *SupplierHandler {
	return &SupplierHandler{service: svc}
}

// Create handles POST /suppliers
func (h *SupplierHandler) Create(c *gin.Context) {
	var req model.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Create(c.Request.Context(), &req)
	if model.HandleError(c, err) {
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// Get handles GET /suppliers/:id
func (h *SupplierHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier id")
		return
	}

	result, err := h.service.Get(c.Request.Context(), id)
	if model.HandleError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, result)
}

// List handles GET /suppliers?page=&page_size=&search=
func (h *SupplierHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "page_size", 10)
	search := c.Query("search")

	results, total, err := h.service.List(c.Request.Context(), page, pageSize, search)
	if model.HandleError(c, err) {
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, results, &response.Meta{
		Page:  page,
		Limit: pageSize,
		Total: total,
	})
}

// Update handles PUT /suppliers/:id
func (h *SupplierHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier id")
		return
	}

	var req model.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, &req)
	if model.HandleError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Delete handles DELETE /suppliers/:id
// Deleting a supplier cascades to every product referencing it.
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier id")
		return
	}

	result, err := h.service.Delete(c.Request.Context(), id)
	if model.HandleError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, result)
}

// BulkDelete handles DELETE /suppliers/bulk with body {"ids": [...]}
func (h *SupplierHandler) BulkDelete(c *gin.Context) {
	var req struct {
		IDs []uuid.UUID `json:"ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	result, err := h.service.DeleteMany(c.Request.Context(), req.IDs)
	if model.HandleError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, result)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
