package main

import (
	"context"
	"net/http"
	"time"

	"catalog-backend/internal/shared/middleware"
	"catalog-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupSupplierRoutes(v1, c)
		setupProductRoutes(v1, c)
	}

	return router
}

// ========================================
// SUPPLIER ROUTES
// ========================================
func setupSupplierRoutes(v1 *gin.RouterGroup, c *container.Container) {
	supplier := v1.Group("/suppliers")
	{
		supplier.POST("", c.SupplierHandler.Create)
		supplier.GET("", c.SupplierHandler.List)
		supplier.GET("/:id", c.SupplierHandler.Get)
		supplier.PUT("/:id", c.SupplierHandler.Update)
		supplier.DELETE("/:id", c.SupplierHandler.Delete)
		supplier.DELETE("/bulk", c.SupplierHandler.BulkDelete)
	}
}

// ========================================
// PRODUCT ROUTES
// ========================================
func setupProductRoutes(v1 *gin.RouterGroup, c *container.Container) {
	product := v1.Group("/products")
	{
		product.POST("", c.ProductHandler.Create)
		product.GET("", c.ProductHandler.List)
		product.POST("/images", c.ProductHandler.UploadImage)
		product.GET("/slug/:slug", c.ProductHandler.GetBySlug)
		product.GET("/:id", c.ProductHandler.Get)
		product.PUT("/:id", c.ProductHandler.Update)
		product.DELETE("/:id", c.ProductHandler.Delete)
		product.DELETE("/bulk", c.ProductHandler.BulkDelete)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		overall := "ok"
		dbStatus := "up"
		if err := c.DB.HealthCheck(checkCtx); err != nil {
			status = http.StatusServiceUnavailable
			overall = "degraded"
			dbStatus = "down"
		}

		ctx.JSON(status, gin.H{
			"status":   overall,
			"app":      c.Config.App.Name,
			"version":  c.Config.App.Version,
			"database": dbStatus,
		})
	}
}
