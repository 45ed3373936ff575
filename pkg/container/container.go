package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"catalog-backend/internal/config"
	infraCache "catalog-backend/internal/infrastructure/cache"
	"catalog-backend/internal/infrastructure/database"
	"catalog-backend/internal/infrastructure/storage"
	"catalog-backend/pkg/cache"
	pkgDatabase "catalog-backend/pkg/database"
	"catalog-backend/pkg/logger"

	productHandler "catalog-backend/internal/domains/product/handler"
	productRepo "catalog-backend/internal/domains/product/repository"
	productService "catalog-backend/internal/domains/product/service"
	supplierHandler "catalog-backend/internal/domains/supplier/handler"
	supplierRepo "catalog-backend/internal/domains/supplier/repository"
	supplierService "catalog-backend/internal/domains/supplier/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton living for the whole process.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config  *config.Config
	DB      *database.PostgresDB
	Cache   cache.Cache
	Storage *storage.MinIOStorage

	// ========================================
	// REPOSITORY LAYER
	// ========================================

	SupplierRepo supplierRepo.RepositoryInterface
	ProductRepo  productRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER
	// ========================================

	SupplierService supplierService.ServiceInterface
	ProductService  productService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================

	SupplierHandler *supplierHandler.SupplierHandler
	ProductHandler  *productHandler.ProductHandler
}

// NewContainer initializes the whole graph in dependency order:
// config, infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Init(cfg.App.Environment)
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: CONNECT POSTGRESQL
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	db := database.New(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: CONNECT REDIS
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisClient := infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Connect(context.Background()); err != nil {
		// Cache failures are non-critical: every read has a DB fallback.
		log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
	} else {
		log.Println("✅ Redis connected")
	}
	c.Cache = redisClient

	// ========================================
	// STEP 4: CONNECT MINIO
	// ========================================
	log.Println("🪣 Connecting to MinIO...")

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}
	c.Storage = minioStorage
	log.Println("✅ Storage ready")

	// ========================================
	// STEP 5: REPOSITORIES
	// ========================================
	c.SupplierRepo = supplierRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.ProductRepo = productRepo.NewPostgresRepository(db.Pool, c.Cache)

	// ========================================
	// STEP 6: SERVICES
	// ========================================
	txRunner := pkgDatabase.NewRunner(db.Pool)
	c.SupplierService = supplierService.NewSupplierService(c.SupplierRepo)
	c.ProductService = productService.NewProductService(c.ProductRepo, c.SupplierRepo, txRunner, c.Storage)

	// ========================================
	// STEP 7: HANDLERS
	// ========================================
	c.SupplierHandler = supplierHandler.NewSupplierHandler(c.SupplierService)
	c.ProductHandler = productHandler.NewProductHandler(c.ProductService, c.Storage)

	log.Println("✅ DI Container ready")
	return c, nil
}

// Cleanup releases infrastructure connections. Call on shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if rc, ok := c.Cache.(*infraCache.RedisClient); ok {
		if err := rc.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}

	log.Println("✅ Cleanup complete")
}
