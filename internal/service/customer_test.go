package service

import (
	"context"
	"testing"

	"shop-api/internal/model"
	"shop-api/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomer(t *testing.T) {
	svc := NewCustomerService(setupTestDB(t))

	customer, err := svc.CreateCustomer(context.Background(), &model.CustomerRequest{
		Name:    "Valid Customer",
		Address: "123 Main St",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, customer.ID)
	assert.Equal(t, "Valid Customer", customer.Name)
	assert.Equal(t, "123 Main St", customer.Address)
}

func TestCreateCustomerBlankFields(t *testing.T) {
	svc := NewCustomerService(setupTestDB(t))
	ctx := context.Background()

	_, err := svc.CreateCustomer(ctx, &model.CustomerRequest{Name: "", Address: "123 Main St"})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["name"], validation.MsgBlank)

	_, err = svc.CreateCustomer(ctx, &model.CustomerRequest{Name: "Valid Customer", Address: ""})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["address"], validation.MsgBlank)
}

func TestPatchCustomerEmptyBody(t *testing.T) {
	svc := NewCustomerService(setupTestDB(t))
	customer := mustCreateCustomer(t, svc, "Valid Customer", "123 Main St")

	_, err := svc.PatchCustomer(context.Background(), customer.ID, &model.CustomerPatchRequest{})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs[validation.NonFieldErrors], validation.MsgEmptyUpdate)
}

func TestDeleteCustomerCascadesToOrders(t *testing.T) {
	db := setupTestDB(t)
	customers := NewCustomerService(db)
	products := NewProductService(db)
	orders := NewOrderService(db)
	ctx := context.Background()

	customer := mustCreateCustomer(t, customers, "Valid Customer", "123 Main St")
	other := mustCreateCustomer(t, customers, "Other Customer", "456 Oak St")
	product := mustCreateProduct(t, products, "Product 1", 1.99, true)

	doomed, err := orders.CreateOrder(ctx, &model.OrderRequest{
		Customer: customer.ID,
		Products: []string{product.ID},
		Status:   model.StatusNew,
	})
	require.NoError(t, err)

	kept, err := orders.CreateOrder(ctx, &model.OrderRequest{
		Customer: other.ID,
		Status:   model.StatusSent,
	})
	require.NoError(t, err)

	require.NoError(t, customers.DeleteCustomer(ctx, customer.ID))

	_, err = customers.GetCustomer(ctx, customer.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = orders.GetOrder(ctx, doomed.ID)
	assert.ErrorIs(t, err, ErrNotFound, "orders of the deleted customer are gone")

	_, err = orders.GetOrder(ctx, kept.ID)
	assert.NoError(t, err, "other customers' orders survive")

	// The product referenced by the deleted order is untouched.
	_, err = products.GetProduct(ctx, product.ID)
	assert.NoError(t, err)
}

func TestDeleteCustomerNotFound(t *testing.T) {
	svc := NewCustomerService(setupTestDB(t))
	assert.ErrorIs(t, svc.DeleteCustomer(context.Background(), "missing"), ErrNotFound)
}
