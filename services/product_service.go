package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dhp131/beaute-project-BE/models"
	"github.com/dhp131/beaute-project-BE/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CatalogCache is the read-through cache the product service consults for
// list and detail reads. A nil-backed implementation is a no-op.
type CatalogCache interface {
	GetList(ctx context.Context, key string) ([]models.Product, bool)
	SetList(ctx context.Context, key string, products []models.Product)
	GetProduct(ctx context.Context, id string) (*models.Product, bool)
	SetProduct(ctx context.Context, product *models.Product)
	Invalidate(ctx context.Context, id string)
}

// ProductService handles catalog business logic.
type ProductService interface {
	Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *ServiceError)
	GetAll(ctx context.Context) ([]models.Product, *ServiceError)
	GetByID(ctx context.Context, id string) (*models.Product, *ServiceError)
	Update(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, *ServiceError)
	Delete(ctx context.Context, id string) (*models.Product, *ServiceError)
	GetByCategory(ctx context.Context, category string) ([]models.Product, *ServiceError)
	GetByPriceRange(ctx context.Context, min, max float64) ([]models.Product, *ServiceError)
	GetBySkinType(ctx context.Context, skinTypeID string) ([]models.Product, *ServiceError)
	GetByUsageTime(ctx context.Context, usageTime string) ([]models.Product, *ServiceError)
	GetByOrigin(ctx context.Context, origin string) ([]models.Product, *ServiceError)
	UpdateInventory(ctx context.Context, id string, quantity int) (*models.Product, *ServiceError)
}

type productServiceImpl struct {
	repo      repository.ProductRepository
	skinTypes repository.SkinTypeRepository
	cache     CatalogCache
	logger    *zap.Logger
}

func NewProductService(
	repo repository.ProductRepository,
	skinTypes repository.SkinTypeRepository,
	cache CatalogCache,
	logger *zap.Logger,
) ProductService {
	return &productServiceImpl{repo: repo, skinTypes: skinTypes, cache: cache, logger: logger}
}

func (s *productServiceImpl) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *ServiceError) {
	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Category:    req.Category,
		Price:       req.Price,
		Inventory:   req.Inventory,
		Discount:    req.Discount,
		UsageTime:   req.UsageTime,
		Origin:      req.Origin,
	}
	if req.SkinTypeID != "" {
		skinTypeID, err := primitive.ObjectIDFromHex(req.SkinTypeID)
		if err != nil {
			return nil, badRequest("Invalid skin type ID")
		}
		product.SkinTypeID = &skinTypeID
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", zap.Error(err))
		return nil, internal("Failed to create product")
	}
	s.cache.Invalidate(ctx, "")

	s.logger.Info("Product created",
		zap.String("id", product.ID.Hex()),
		zap.String("name", product.Name),
		zap.String("category", product.Category))
	return product, nil
}

func (s *productServiceImpl) GetAll(ctx context.Context) ([]models.Product, *ServiceError) {
	return s.list(ctx, "all", func(ctx context.Context) ([]models.Product, error) {
		return s.repo.FindAll(ctx)
	})
}

func (s *productServiceImpl) GetByID(ctx context.Context, id string) (*models.Product, *ServiceError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, badRequest("Invalid product ID")
	}

	if cached, ok := s.cache.GetProduct(ctx, id); ok {
		return cached, nil
	}

	product, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Product not found")
		}
		s.logger.Error("Failed to retrieve product", zap.String("id", id), zap.Error(err))
		return nil, internal("Failed to retrieve product")
	}

	if product.SkinTypeID != nil {
		if skinType, err := s.skinTypes.FindByID(ctx, *product.SkinTypeID); err == nil {
			product.SkinType = skinType
		}
	}

	s.cache.SetProduct(ctx, product)
	return product, nil
}

func (s *productServiceImpl) Update(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, *ServiceError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, badRequest("Invalid product ID")
	}

	updates := bson.M{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Inventory != nil {
		updates["inventory"] = *req.Inventory
	}
	if req.Discount != nil {
		updates["discount"] = *req.Discount
	}
	if req.UsageTime != nil {
		updates["usageTime"] = *req.UsageTime
	}
	if req.Origin != nil {
		updates["origin"] = *req.Origin
	}
	if req.SkinTypeID != nil {
		if *req.SkinTypeID == "" {
			updates["skinTypeId"] = nil
		} else {
			skinTypeID, err := primitive.ObjectIDFromHex(*req.SkinTypeID)
			if err != nil {
				return nil, badRequest("Invalid skin type ID")
			}
			updates["skinTypeId"] = skinTypeID
		}
	}
	if len(updates) == 0 {
		return nil, badRequest("No fields to update")
	}

	product, err := s.repo.Update(ctx, oid, updates)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Product not found")
		}
		s.logger.Error("Failed to update product", zap.String("id", id), zap.Error(err))
		return nil, internal("Failed to update product")
	}
	s.cache.Invalidate(ctx, id)
	return product, nil
}

func (s *productServiceImpl) Delete(ctx context.Context, id string) (*models.Product, *ServiceError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, badRequest("Invalid product ID")
	}

	product, err := s.repo.Delete(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Product not found")
		}
		s.logger.Error("Failed to delete product", zap.String("id", id), zap.Error(err))
		return nil, internal("Failed to delete product")
	}
	s.cache.Invalidate(ctx, id)

	s.logger.Info("Product deleted", zap.String("id", id))
	return product, nil
}

func (s *productServiceImpl) GetByCategory(ctx context.Context, category string) ([]models.Product, *ServiceError) {
	return s.list(ctx, "category:"+category, func(ctx context.Context) ([]models.Product, error) {
		return s.repo.FindByCategory(ctx, category)
	})
}

func (s *productServiceImpl) GetByPriceRange(ctx context.Context, min, max float64) ([]models.Product, *ServiceError) {
	if min < 0 || max < min {
		return nil, badRequest("Invalid price range")
	}
	key := fmt.Sprintf("price:%g-%g", min, max)
	return s.list(ctx, key, func(ctx context.Context) ([]models.Product, error) {
		return s.repo.FindByPriceRange(ctx, min, max)
	})
}

func (s *productServiceImpl) GetBySkinType(ctx context.Context, skinTypeID string) ([]models.Product, *ServiceError) {
	oid, err := primitive.ObjectIDFromHex(skinTypeID)
	if err != nil {
		return nil, badRequest("Invalid skin type ID")
	}
	return s.list(ctx, "skintype:"+skinTypeID, func(ctx context.Context) ([]models.Product, error) {
		return s.repo.FindBySkinType(ctx, oid)
	})
}

func (s *productServiceImpl) GetByUsageTime(ctx context.Context, usageTime string) ([]models.Product, *ServiceError) {
	return s.list(ctx, "usage:"+usageTime, func(ctx context.Context) ([]models.Product, error) {
		return s.repo.FindByUsageTime(ctx, usageTime)
	})
}

func (s *productServiceImpl) GetByOrigin(ctx context.Context, origin string) ([]models.Product, *ServiceError) {
	return s.list(ctx, "origin:"+origin, func(ctx context.Context) ([]models.Product, error) {
		return s.repo.FindByOrigin(ctx, origin)
	})
}

func (s *productServiceImpl) UpdateInventory(ctx context.Context, id string, quantity int) (*models.Product, *ServiceError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, badRequest("Invalid product ID")
	}

	product, err := s.repo.IncrementInventory(ctx, oid, quantity)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Product not found")
		}
		s.logger.Error("Failed to update product inventory", zap.String("id", id), zap.Error(err))
		return nil, internal("Failed to update product inventory")
	}
	s.cache.Invalidate(ctx, id)
	return product, nil
}

func (s *productServiceImpl) list(ctx context.Context, key string, fetch func(context.Context) ([]models.Product, error)) ([]models.Product, *ServiceError) {
	if cached, ok := s.cache.GetList(ctx, key); ok {
		return cached, nil
	}

	products, err := fetch(ctx)
	if err != nil {
		s.logger.Error("Failed to retrieve products", zap.String("query", key), zap.Error(err))
		return nil, internal("Failed to retrieve products")
	}
	if products == nil {
		products = []models.Product{}
	}
	s.cache.SetList(ctx, key, products)
	return products, nil
}
