package handler

import (
	"net/http"

	"shop-api/internal/model"
	"shop-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CustomerHandler serves the customer resource
type CustomerHandler struct {
	customerService service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// ListCustomers returns all customers.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list customers"})
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomer returns one customer by id.
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.customerService.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// CreateCustomer validates and persists a new customer.
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req model.CustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err, "Customer not found")
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer replaces an existing customer.
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var req model.CustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeServiceError(c, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// PatchCustomer applies a partial update; an empty body is rejected.
func (h *CustomerHandler) PatchCustomer(c *gin.Context) {
	var req model.CustomerPatchRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.PatchCustomer(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeServiceError(c, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes a customer and, by cascade, all of its orders.
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.customerService.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err, "Customer not found")
		return
	}
	c.Status(http.StatusNoContent)
}
