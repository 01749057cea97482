package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"shop-api/internal/auth"
	"shop-api/internal/model"
	"shop-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testServer bundles the router with direct service access and
// ready-made tokens for an admin and a regular user.
type testServer struct {
	router     *gin.Engine
	db         *gorm.DB
	products   service.ProductService
	customers  service.CustomerService
	orders     service.OrderService
	adminToken string
	userToken  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Customer{},
		&model.Order{},
	))

	userService := service.NewUserService(db)
	productService := service.NewProductService(db)
	customerService := service.NewCustomerService(db)
	orderService := service.NewOrderService(db)
	authService := auth.NewService(userService)

	authzService, err := service.NewAuthorizationService()
	require.NoError(t, err)

	ctx := context.Background()
	_, err = userService.CreateUser(ctx, &service.CreateUserRequest{
		Username: "testadmin", Password: "testpassword", Role: model.RoleAdmin,
	})
	require.NoError(t, err)
	_, err = userService.CreateUser(ctx, &service.CreateUserRequest{
		Username: "testuser", Password: "testpassword", Role: "customer",
	})
	require.NoError(t, err)

	adminLogin, err := authService.Login(ctx, "testadmin", "testpassword")
	require.NoError(t, err)
	userLogin, err := authService.Login(ctx, "testuser", "testpassword")
	require.NoError(t, err)

	router := NewRouter(RouterConfig{
		Logger:          zerolog.Nop(),
		DB:              db,
		AuthService:     authService,
		AuthzService:    authzService,
		ProductService:  productService,
		CustomerService: customerService,
		OrderService:    orderService,
	})

	return &testServer{
		router:     router,
		db:         db,
		products:   productService,
		customers:  customerService,
		orders:     orderService,
		adminToken: adminLogin.Token,
		userToken:  userLogin.Token,
	}
}

// do performs a request; an empty token leaves the Authorization header off.
func (ts *testServer) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst))
}

func (ts *testServer) createProduct(t *testing.T, name string, price float64, available bool) *model.Product {
	t.Helper()
	product, err := ts.products.CreateProduct(context.Background(), &model.ProductRequest{
		Name: name, Price: price, Available: &available,
	})
	require.NoError(t, err)
	return product
}

func (ts *testServer) createCustomer(t *testing.T, name, address string) *model.Customer {
	t.Helper()
	customer, err := ts.customers.CreateCustomer(context.Background(), &model.CustomerRequest{
		Name: name, Address: address,
	})
	require.NoError(t, err)
	return customer
}
