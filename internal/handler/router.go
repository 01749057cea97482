package handler

import (
	"net/http"

	"shop-api/internal/auth"
	"shop-api/internal/middleware"
	"shop-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// RouterConfig carries everything the route table needs.
type RouterConfig struct {
	Logger          zerolog.Logger
	DB              *gorm.DB
	AuthService     *auth.Service
	AuthzService    *service.AuthorizationService
	ProductService  service.ProductService
	CustomerService service.CustomerService
	OrderService    service.OrderService
}

// NewRouter assembles the full HTTP surface: the public login route, the
// legacy unauthenticated product endpoints, and the authenticated REST
// resources under /api.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(cfg.Logger))

	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	authHandler := NewAuthHandler(cfg.AuthService)
	productHandler := NewProductHandler(cfg.ProductService)
	customerHandler := NewCustomerHandler(cfg.CustomerService)
	orderHandler := NewOrderHandler(cfg.OrderService)
	legacyHandler := NewLegacyProductHandler(cfg.DB)

	// Public routes
	r.POST("/api/auth/login", authHandler.Login)

	// Legacy product endpoints: no auth gate, own error contract.
	r.Any("/products", legacyHandler.Products)
	r.Any("/products/:id", legacyHandler.ProductDetail)

	// Protected routes
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg.AuthService))

	authz := cfg.AuthzService

	api.GET("/products",
		middleware.RequirePermission(authz, "products", service.ActionRead),
		productHandler.ListProducts)
	api.GET("/products/:id",
		middleware.RequirePermission(authz, "products", service.ActionRead),
		productHandler.GetProduct)
	api.POST("/products",
		middleware.RequirePermission(authz, "products", service.ActionWrite),
		productHandler.CreateProduct)
	api.PUT("/products/:id",
		middleware.RequirePermission(authz, "products", service.ActionWrite),
		productHandler.UpdateProduct)
	api.PATCH("/products/:id",
		middleware.RequirePermission(authz, "products", service.ActionWrite),
		productHandler.PatchProduct)
	api.DELETE("/products/:id",
		middleware.RequirePermission(authz, "products", service.ActionWrite),
		productHandler.DeleteProduct)

	api.GET("/customers",
		middleware.RequirePermission(authz, "customers", service.ActionRead),
		customerHandler.ListCustomers)
	api.GET("/customers/:id",
		middleware.RequirePermission(authz, "customers", service.ActionRead),
		customerHandler.GetCustomer)
	api.POST("/customers",
		middleware.RequirePermission(authz, "customers", service.ActionWrite),
		customerHandler.CreateCustomer)
	api.PUT("/customers/:id",
		middleware.RequirePermission(authz, "customers", service.ActionWrite),
		customerHandler.UpdateCustomer)
	api.PATCH("/customers/:id",
		middleware.RequirePermission(authz, "customers", service.ActionWrite),
		customerHandler.PatchCustomer)
	api.DELETE("/customers/:id",
		middleware.RequirePermission(authz, "customers", service.ActionWrite),
		customerHandler.DeleteCustomer)

	api.GET("/orders",
		middleware.RequirePermission(authz, "orders", service.ActionRead),
		orderHandler.ListOrders)
	api.GET("/orders/:id",
		middleware.RequirePermission(authz, "orders", service.ActionRead),
		orderHandler.GetOrder)
	api.POST("/orders",
		middleware.RequirePermission(authz, "orders", service.ActionWrite),
		orderHandler.CreateOrder)
	api.PUT("/orders/:id",
		middleware.RequirePermission(authz, "orders", service.ActionWrite),
		orderHandler.UpdateOrder)
	api.PATCH("/orders/:id",
		middleware.RequirePermission(authz, "orders", service.ActionWrite),
		orderHandler.PatchOrder)
	api.DELETE("/orders/:id",
		middleware.RequirePermission(authz, "orders", service.ActionWrite),
		orderHandler.DeleteOrder)

	return r
}
