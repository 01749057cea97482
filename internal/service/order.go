package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shop-api/internal/model"
	"shop-api/internal/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderService manages purchase records
type OrderService interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error)
	UpdateOrder(ctx context.Context, id string, req *model.OrderRequest) (*model.Order, error)
	PatchOrder(ctx context.Context, id string, req *model.OrderPatchRequest) (*model.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

type orderServiceImpl struct {
	db *gorm.DB
}

// NewOrderService creates a new order service
func NewOrderService(db *gorm.DB) OrderService {
	return &orderServiceImpl{db: db}
}

// ListOrders returns all orders with their products preloaded so the
// derived fields reflect current product state.
func (s *orderServiceImpl) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders := []model.Order{}
	if err := s.db.WithContext(ctx).Preload("Products").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetOrder returns one order with its products preloaded, or ErrNotFound.
func (s *orderServiceImpl) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	if err := s.db.WithContext(ctx).Preload("Products").Where("id = ?", id).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

// CreateOrder validates and persists a new order. The creation timestamp
// is set here and never updated afterwards.
func (s *orderServiceImpl) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	order := &model.Order{
		ID:         uuid.NewString(),
		CustomerID: req.Customer,
		Date:       time.Now(),
		Status:     req.Status,
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkCustomer(ctx, req.Customer); err != nil {
		return nil, err
	}
	products, err := s.resolveProducts(ctx, req.Products)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Products").Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		if len(products) > 0 {
			if err := tx.Model(order).Association("Products").Append(&products); err != nil {
				return fmt.Errorf("failed to attach products: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetOrder(ctx, order.ID)
}

// UpdateOrder replaces the customer, status and product set of an
// existing order. The date field is immutable.
func (s *orderServiceImpl) UpdateOrder(ctx context.Context, id string, req *model.OrderRequest) (*model.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	order.CustomerID = req.Customer
	order.Status = req.Status

	products := req.Products
	if products == nil {
		products = []string{}
	}
	return s.save(ctx, order, &products)
}

// PatchOrder applies only the supplied fields. An empty request is
// rejected; the product set is replaced only when present.
func (s *orderServiceImpl) PatchOrder(ctx context.Context, id string, req *model.OrderPatchRequest) (*model.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Empty() {
		return nil, emptyUpdateError()
	}

	if req.Customer != nil {
		order.CustomerID = *req.Customer
	}
	if req.Status != nil {
		order.Status = *req.Status
	}

	return s.save(ctx, order, req.Products)
}

// save validates the order and persists it; when productIDs is non-nil
// the association is replaced with the resolved set.
func (s *orderServiceImpl) save(ctx context.Context, order *model.Order, productIDs *[]string) (*model.Order, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkCustomer(ctx, order.CustomerID); err != nil {
		return nil, err
	}

	var products []model.Product
	if productIDs != nil {
		resolved, err := s.resolveProducts(ctx, *productIDs)
		if err != nil {
			return nil, err
		}
		products = resolved
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Products").Save(order).Error; err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		if productIDs != nil {
			if err := tx.Model(order).Association("Products").Replace(&products); err != nil {
				return fmt.Errorf("failed to replace products: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetOrder(ctx, order.ID)
}

// DeleteOrder removes an order and its join rows. Products are not
// affected.
func (s *orderServiceImpl) DeleteOrder(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM order_products WHERE order_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to detach products: %w", err)
		}

		res := tx.Where("id = ?", id).Delete(&model.Order{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete order: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// checkCustomer turns a dangling customer reference into a field error.
func (s *orderServiceImpl) checkCustomer(ctx context.Context, id string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Customer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check customer: %w", err)
	}
	if count == 0 {
		errs := validation.NewErrors()
		errs.Add("customer", fmt.Sprintf("Invalid customer %q - object does not exist.", id))
		return errs
	}
	return nil
}

// resolveProducts loads products by id, failing with a field error when
// any id does not exist.
func (s *orderServiceImpl) resolveProducts(ctx context.Context, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	products := []model.Product{}
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve products: %w", err)
	}

	found := make(map[string]bool, len(products))
	for _, p := range products {
		found[p.ID] = true
	}

	errs := validation.NewErrors()
	for _, id := range ids {
		if !found[id] {
			errs.Add("products", fmt.Sprintf("Invalid product %q - object does not exist.", id))
		}
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}
	return products, nil
}
