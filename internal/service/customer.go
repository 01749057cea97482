package service

import (
	"context"
	"errors"
	"fmt"

	"shop-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerService manages customer records
type CustomerService interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
	CreateCustomer(ctx context.Context, req *model.CustomerRequest) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, id string, req *model.CustomerRequest) (*model.Customer, error)
	PatchCustomer(ctx context.Context, id string, req *model.CustomerPatchRequest) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

type customerServiceImpl struct {
	db *gorm.DB
}

// NewCustomerService creates a new customer service
func NewCustomerService(db *gorm.DB) CustomerService {
	return &customerServiceImpl{db: db}
}

// ListCustomers returns all customers.
func (s *customerServiceImpl) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	customers := []model.Customer{}
	if err := s.db.WithContext(ctx).Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// GetCustomer returns one customer or ErrNotFound.
func (s *customerServiceImpl) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	var customer model.Customer
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}

// CreateCustomer validates and persists a new customer.
func (s *customerServiceImpl) CreateCustomer(ctx context.Context, req *model.CustomerRequest) (*model.Customer, error) {
	customer := &model.Customer{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Address: req.Address,
	}

	if err := customer.Validate(); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(customer).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

// UpdateCustomer replaces every field of an existing customer.
func (s *customerServiceImpl) UpdateCustomer(ctx context.Context, id string, req *model.CustomerRequest) (*model.Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Name = req.Name
	customer.Address = req.Address

	return s.save(ctx, customer)
}

// PatchCustomer applies only the supplied fields. An empty request is
// rejected.
func (s *customerServiceImpl) PatchCustomer(ctx context.Context, id string, req *model.CustomerPatchRequest) (*model.Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Empty() {
		return nil, emptyUpdateError()
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}

	return s.save(ctx, customer)
}

func (s *customerServiceImpl) save(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Save(customer).Error; err != nil {
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}
	return customer, nil
}

// DeleteCustomer removes a customer and cascades to all of the
// customer's orders, join rows included, in one transaction.
func (s *customerServiceImpl) DeleteCustomer(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var orderIDs []string
		if err := tx.Model(&model.Order{}).Where("customer_id = ?", id).Pluck("id", &orderIDs).Error; err != nil {
			return fmt.Errorf("failed to collect customer orders: %w", err)
		}

		if len(orderIDs) > 0 {
			if err := tx.Exec("DELETE FROM order_products WHERE order_id IN ?", orderIDs).Error; err != nil {
				return fmt.Errorf("failed to detach order products: %w", err)
			}
			if err := tx.Where("id IN ?", orderIDs).Delete(&model.Order{}).Error; err != nil {
				return fmt.Errorf("failed to delete customer orders: %w", err)
			}
		}

		res := tx.Where("id = ?", id).Delete(&model.Customer{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete customer: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
