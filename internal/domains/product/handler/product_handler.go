package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"catalog-backend/internal/domains/product/model"
	"catalog-backend/internal/domains/product/service"
	"catalog-backend/internal/infrastructure/storage"
	"catalog-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxImageSize caps product image uploads at 5 MB.
const maxImageSize = 5 << 20

// ProductHandler handles HTTP requests for the product domain.
type ProductHandler struct {
	service service.ServiceInterface
	storage *storage.MinIOStorage
}

func NewProductHandler(svc service.ServiceInterface, st *storage.MinIOStorage) *ProductHandler {
	return &ProductHandler{
		service: svc,
		storage: st,
	}
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req model.CreateProductRequest
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

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product id")
		return
	}

	result, err := h.service.Get(c.Request.Context(), id)
	if model.HandleError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetBySlug handles GET /products/slug/:slug
func (h *ProductHandler) GetBySlug(c *gin.Context) {
	result, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if model.HandleError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, result)
}

// List handles GET /products with supplier_id, is_active, search, sort_by,
// sort_order, page and page_size query parameters.
func (h *ProductHandler) List(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	results, total, err := h.service.List(c.Request.Context(), filter)
	if model.HandleError(c, err) {
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, results, &response.Meta{
		Page:  filter.Page,
		Limit: filter.PageSize,
		Total: total,
	})
}

// Update handles PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product id")
		return
	}

	var req model.UpdateProductRequest
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

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); model.HandleError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": 1})
}

// BulkDelete handles DELETE /products/bulk with body {"ids": [...]}
func (h *ProductHandler) BulkDelete(c *gin.Context) {
	var req struct {
		IDs []uuid.UUID `json:"ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	deleted, err := h.service.DeleteMany(c.Request.Context(), req.IDs)
	if model.HandleError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": deleted})
}

// UploadImage handles POST /products/images with a multipart "image" field.
// It stores the file and returns the reference to put in the product's
// image field; the catalog never inspects the bytes again.
func (h *ProductHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "An image file is required")
		return
	}
	if fileHeader.Size > maxImageSize {
		response.BadRequest(c, "Image must not exceed 5MB")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Unable to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		response.InternalServerError(c, "Failed to read uploaded file")
		return
	}
	if len(data) > maxImageSize {
		response.BadRequest(c, "Image must not exceed 5MB")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		response.BadRequest(c, "Only image uploads are allowed")
		return
	}

	key := "products/" + uuid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	url, err := h.storage.Upload(c.Request.Context(), key, data, contentType)
	if err != nil {
		response.InternalServerError(c, "Failed to store image")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"image": url})
}

func parseFilter(c *gin.Context) (*model.ProductFilter, bool) {
	filter := &model.ProductFilter{
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Page:      queryInt(c, "page", 1),
		PageSize:  queryInt(c, "page_size", 10),
	}

	if raw := c.Query("supplier_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid supplier_id filter")
			return nil, false
		}
		filter.SupplierID = &id
	}
	if raw := c.Query("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(c, "Invalid is_active filter")
			return nil, false
		}
		filter.IsActive = &active
	}

	filter.Normalize()
	return filter, true
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
