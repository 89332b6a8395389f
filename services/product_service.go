package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/models"
	awspkg "github.com/yaksha-ameet-khemani/e-mall-pro-connect/pkg/aws"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/repository"
	"go.uber.org/zap"
)

const msgProductNotFound = "Product not found."

// ProductService covers the catalogue and the per-user cart and checkout flow.
type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *ServiceError)
	GetProduct(ctx context.Context, id string) (*models.Product, *ServiceError)
	UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, *ServiceError)
	DeleteProduct(ctx context.Context, id string) *ServiceError
	GetAllProducts(ctx context.Context) ([]models.Product, *ServiceError)
	SearchProducts(ctx context.Context, name, description string) ([]models.Product, *ServiceError)
	GetTopRatedProducts(ctx context.Context, limit int) ([]models.Product, *ServiceError)
	CreateImageUploadURL(ctx context.Context, id string, req *models.ImageUploadRequest) (*models.ImageUploadResponse, *ServiceError)

	AddToCart(ctx context.Context, userID, productID string, quantity int) (*models.CartView, *ServiceError)
	ViewCart(ctx context.Context, userID string) (*models.CartView, *ServiceError)
	UpdateCartItem(ctx context.Context, userID, itemID string, quantity int) (*models.CartView, *ServiceError)
	RemoveCartItem(ctx context.Context, userID, itemID string) (*models.CartView, *ServiceError)
	ApplyDiscount(ctx context.Context, userID string, percentage float64) (*models.DiscountResponse, *ServiceError)
	CheckoutCart(ctx context.Context, userID string) (*models.CheckoutResponse, *ServiceError)
}

type productServiceImpl struct {
	products repository.ProductRepository
	carts    repository.CartRepository
	orders   repository.OrderRepository
	infra
}

func NewProductService(
	products repository.ProductRepository,
	carts repository.CartRepository,
	orders repository.OrderRepository,
	logger *zap.Logger,
	opts ...Option,
) ProductService {
	return &productServiceImpl{
		products: products,
		carts:    carts,
		orders:   orders,
		infra:    newInfra(logger, opts),
	}
}

func validateProductFields(price, ratings *float64, quantity *int) *ServiceError {
	if price != nil && *price < 0 {
		return Validation("Price must not be negative.")
	}
	if ratings != nil && *ratings < 0 {
		return Validation("Ratings must not be negative.")
	}
	if quantity != nil && *quantity < 0 {
		return Validation("Quantity must not be negative.")
	}
	return nil
}

func (s *productServiceImpl) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *ServiceError) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, Validation("Product name is required.")
	}
	if svcErr := validateProductFields(&req.Price, &req.Ratings, &req.Quantity); svcErr != nil {
		return nil, svcErr
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Ratings:     req.Ratings,
		Quantity:    req.Quantity,
	}
	if err := s.products.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", zap.Error(err))
		return nil, Persistence("Failed to create product.", err)
	}
	if s.cache != nil {
		s.cache.InvalidateList(ctx)
	}

	s.count(awspkg.MetricProductsCreated)
	s.logger.Info("Product created", zap.String("product_id", product.ID.Hex()))
	return product, nil
}

func (s *productServiceImpl) GetProduct(ctx context.Context, id string) (*models.Product, *ServiceError) {
	oid, svcErr := parseID(id, "product")
	if svcErr != nil {
		return nil, svcErr
	}

	if s.cache != nil {
		if product, ok := s.cache.GetProduct(ctx, oid.Hex()); ok {
			s.count(awspkg.MetricCacheHits)
			return product, nil
		}
		s.count(awspkg.MetricCacheMisses)
	}

	product, err := s.products.FindByID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFound(msgProductNotFound)
	}
	if err != nil {
		s.logger.Error("Failed to fetch product", zap.String("product_id", id), zap.Error(err))
		return nil, Persistence("Failed to fetch product.", err)
	}

	if s.cache != nil {
		s.cache.SetProduct(ctx, product)
	}
	return product, nil
}

func (s *productServiceImpl) UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, *ServiceError) {
	oid, svcErr := parseID(id, "product")
	if svcErr != nil {
		return nil, svcErr
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, Validation("Product name is required.")
	}
	if svcErr := validateProductFields(req.Price, req.Ratings, req.Quantity); svcErr != nil {
		return nil, svcErr
	}

	product, err := s.products.Update(ctx, oid, req)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFound(msgProductNotFound)
	}
	if err != nil {
		s.logger.Error("Failed to update product", zap.String("product_id", id), zap.Error(err))
		return nil, Persistence("Failed to update product.", err)
	}
	if s.cache != nil {
		s.cache.InvalidateProduct(ctx, oid.Hex())
	}
	return product, nil
}

func (s *productServiceImpl) DeleteProduct(ctx context.Context, id string) *ServiceError {
	oid, svcErr := parseID(id, "product")
	if svcErr != nil {
		return svcErr
	}

	err := s.products.Delete(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return NotFound(msgProductNotFound)
	}
	if err != nil {
		s.logger.Error("Failed to delete product", zap.String("product_id", id), zap.Error(err))
		return Persistence("Failed to delete product.", err)
	}
	if s.cache != nil {
		s.cache.InvalidateProduct(ctx, oid.Hex())
	}
	return nil
}

func (s *productServiceImpl) GetAllProducts(ctx context.Context) ([]models.Product, *ServiceError) {
	if s.cache != nil {
		if products, ok := s.cache.GetProductList(ctx); ok {
			return products, nil
		}
	}

	products, err := s.products.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch products", zap.Error(err))
		return nil, Persistence("Failed to fetch products.", err)
	}
	if s.cache != nil {
		s.cache.SetProductList(ctx, products)
	}
	return products, nil
}

func (s *productServiceImpl) SearchProducts(ctx context.Context, name, description string) ([]models.Product, *ServiceError) {
	products, err := s.products.Search(ctx, strings.TrimSpace(name), strings.TrimSpace(description))
	if err != nil {
		s.logger.Error("Failed to search products", zap.String("name", name), zap.String("description", description), zap.Error(err))
		return nil, Persistence("Failed to search products.", err)
	}
	return products, nil
}

func (s *productServiceImpl) GetTopRatedProducts(ctx context.Context, limit int) ([]models.Product, *ServiceError) {
	if limit <= 0 {
		return nil, Validation("Limit must be a positive integer.")
	}
	products, err := s.products.FindTopRated(ctx, int64(limit))
	if err != nil {
		s.logger.Error("Failed to fetch top rated products", zap.Int("limit", limit), zap.Error(err))
		return nil, Persistence("Failed to fetch top rated products.", err)
	}
	return products, nil
}

// CreateImageUploadURL presigns an S3 PUT for a new image of an existing product.
func (s *productServiceImpl) CreateImageUploadURL(ctx context.Context, id string, req *models.ImageUploadRequest) (*models.ImageUploadResponse, *ServiceError) {
	if s.presigner == nil {
		return nil, &ServiceError{StatusCode: http.StatusServiceUnavailable, Message: "Image uploads are not configured."}
	}
	product, svcErr := s.GetProduct(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}

	ext := strings.ToLower(path.Ext(req.FileName))
	key := fmt.Sprintf("%s%s/%s%s", s.imagePrefix, product.ID.Hex(), uuid.NewString(), ext)
	url, headers, err := s.presigner.PresignPut(ctx, key, req.ContentType)
	if err != nil {
		s.logger.Error("Failed to presign image upload", zap.String("product_id", id), zap.Error(err))
		return nil, Persistence("Failed to create image upload URL.", err)
	}
	return &models.ImageUploadResponse{UploadURL: url, Key: key, Headers: headers}, nil
}
