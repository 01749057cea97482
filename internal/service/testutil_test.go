package service

import (
	"context"
	"testing"

	"shop-api/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Customer{},
		&model.Order{},
	))
	return db
}

func mustCreateProduct(t *testing.T, svc ProductService, name string, price float64, available bool) *model.Product {
	t.Helper()
	product, err := svc.CreateProduct(context.Background(), &model.ProductRequest{
		Name:      name,
		Price:     price,
		Available: &available,
	})
	require.NoError(t, err)
	return product
}

func mustCreateCustomer(t *testing.T, svc CustomerService, name, address string) *model.Customer {
	t.Helper()
	customer, err := svc.CreateCustomer(context.Background(), &model.CustomerRequest{
		Name:    name,
		Address: address,
	})
	require.NoError(t, err)
	return customer
}
