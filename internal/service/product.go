package service

import (
	"context"
	"errors"
	"fmt"

	"shop-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductService manages the product catalog
type ProductService interface {
	ListProducts(ctx context.Context, search string) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, req *model.ProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, req *model.ProductRequest) (*model.Product, error)
	PatchProduct(ctx context.Context, id string, req *model.ProductPatchRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type productServiceImpl struct {
	db *gorm.DB
}

// NewProductService creates a new product service
func NewProductService(db *gorm.DB) ProductService {
	return &productServiceImpl{db: db}
}

// ListProducts returns all products, optionally filtered by a
// case-insensitive name substring.
func (s *productServiceImpl) ListProducts(ctx context.Context, search string) ([]model.Product, error) {
	query := s.db.WithContext(ctx).Model(&model.Product{})
	if search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
	}

	products := []model.Product{}
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct returns one product or ErrNotFound.
func (s *productServiceImpl) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

// CreateProduct validates and persists a new product.
func (s *productServiceImpl) CreateProduct(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	available := true
	if req.Available != nil {
		available = *req.Available
	}

	product := &model.Product{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Price:     req.Price,
		Available: available,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// UpdateProduct replaces every field of an existing product. An absent
// available flag falls back to the field default.
func (s *productServiceImpl) UpdateProduct(ctx context.Context, id string, req *model.ProductRequest) (*model.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Price = req.Price
	product.Available = true
	if req.Available != nil {
		product.Available = *req.Available
	}

	return s.save(ctx, product)
}

// PatchProduct applies only the supplied fields, then re-validates the
// whole product. An empty request is rejected.
func (s *productServiceImpl) PatchProduct(ctx context.Context, id string, req *model.ProductPatchRequest) (*model.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Empty() {
		return nil, emptyUpdateError()
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Available != nil {
		product.Available = *req.Available
	}

	return s.save(ctx, product)
}

func (s *productServiceImpl) save(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := product.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	return product, nil
}

// DeleteProduct removes a product from the catalog and from every
// order's product set. Orders themselves are left untouched.
func (s *productServiceImpl) DeleteProduct(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM order_products WHERE product_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to detach product from orders: %w", err)
		}

		res := tx.Where("id = ?", id).Delete(&model.Product{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
