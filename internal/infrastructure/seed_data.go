package infrastructure

import (
	"context"
	"fmt"

	"shop-api/internal/model"
	"shop-api/internal/service"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// SeedDataManager populates demo data for development setups
type SeedDataManager struct {
	db              *gorm.DB
	logger          zerolog.Logger
	userService     service.UserService
	productService  service.ProductService
	customerService service.CustomerService
	orderService    service.OrderService
}

// NewSeedDataManager creates a new seed data manager
func NewSeedDataManager(
	db *gorm.DB,
	logger zerolog.Logger,
	userService service.UserService,
	productService service.ProductService,
	customerService service.CustomerService,
	orderService service.OrderService,
) *SeedDataManager {
	return &SeedDataManager{
		db:              db,
		logger:          logger,
		userService:     userService,
		productService:  productService,
		customerService: customerService,
		orderService:    orderService,
	}
}

// SeedAll initializes all sample data. Each step skips itself when rows
// already exist, so repeated startups stay idempotent.
func (s *SeedDataManager) SeedAll(ctx context.Context) error {
	if err := s.setupSampleUsers(ctx); err != nil {
		return fmt.Errorf("failed to setup sample users: %w", err)
	}
	if err := s.setupSampleRecords(ctx); err != nil {
		return fmt.Errorf("failed to setup sample records: %w", err)
	}
	return nil
}

func (s *SeedDataManager) setupSampleUsers(ctx context.Context) error {
	count, err := s.userService.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}
	if count > 0 {
		s.logger.Info().Msg("sample users already exist, skipping creation")
		return nil
	}

	sampleUsers := []service.CreateUserRequest{
		{Username: "alice", Password: "password123", Role: model.RoleAdmin},
		{Username: "bob", Password: "password123", Role: "customer"},
	}

	for _, userReq := range sampleUsers {
		user, err := s.userService.CreateUser(ctx, &userReq)
		if err != nil {
			s.logger.Warn().Err(err).Str("username", userReq.Username).Msg("failed to create sample user")
			continue
		}
		s.logger.Info().Str("username", user.Username).Str("id", user.ID).Msg("created sample user")
	}
	return nil
}

func (s *SeedDataManager) setupSampleRecords(ctx context.Context) error {
	existing, err := s.productService.ListProducts(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to check existing products: %w", err)
	}
	if len(existing) > 0 {
		s.logger.Info().Msg("sample records already exist, skipping creation")
		return nil
	}

	unavailable := false
	productReqs := []model.ProductRequest{
		{Name: "Hair Brush", Price: 19.99},
		{Name: "Shampoo", Price: 10.49},
		{Name: "Conditioner", Price: 8.99, Available: &unavailable},
	}

	products := make([]*model.Product, 0, len(productReqs))
	for i := range productReqs {
		product, err := s.productService.CreateProduct(ctx, &productReqs[i])
		if err != nil {
			return fmt.Errorf("failed to create sample product %q: %w", productReqs[i].Name, err)
		}
		products = append(products, product)
	}

	customerReqs := []model.CustomerRequest{
		{Name: "Jane Doe", Address: "123 Main St, Springfield"},
		{Name: "John Smith", Address: "456 Oak St, Shelbyville"},
		{Name: "Alice Johnson", Address: "789 Maple Ave, Capital City"},
	}

	customers := make([]*model.Customer, 0, len(customerReqs))
	for i := range customerReqs {
		customer, err := s.customerService.CreateCustomer(ctx, &customerReqs[i])
		if err != nil {
			return fmt.Errorf("failed to create sample customer %q: %w", customerReqs[i].Name, err)
		}
		customers = append(customers, customer)
	}

	orderReqs := []model.OrderRequest{
		{Customer: customers[0].ID, Status: model.StatusNew, Products: []string{products[0].ID, products[1].ID}},
		{Customer: customers[1].ID, Status: model.StatusInProcess, Products: []string{products[1].ID, products[2].ID}},
		{Customer: customers[2].ID, Status: model.StatusSent, Products: []string{products[0].ID, products[2].ID}},
	}

	for i := range orderReqs {
		if _, err := s.orderService.CreateOrder(ctx, &orderReqs[i]); err != nil {
			return fmt.Errorf("failed to create sample order: %w", err)
		}
	}

	s.logger.Info().
		Int("products", len(products)).
		Int("customers", len(customers)).
		Int("orders", len(orderReqs)).
		Msg("sample data setup completed")
	return nil
}
