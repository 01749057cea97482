package handler

import (
	"net/http"

	"shop-api/internal/model"
	"shop-api/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves the order resource
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// ListOrders returns all orders with nested products and the derived
// total price.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}

	responses := make([]model.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, model.NewOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// GetOrder returns one order by id.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, model.NewOrderResponse(order))
}

// CreateOrder validates and persists a new order.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req model.OrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusCreated, model.NewOrderResponse(order))
}

// UpdateOrder replaces an existing order. The creation date is immutable.
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var req model.OrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeServiceError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, model.NewOrderResponse(order))
}

// PatchOrder applies a partial update; an empty body is rejected.
func (h *OrderHandler) PatchOrder(c *gin.Context) {
	var req model.OrderPatchRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.PatchOrder(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeServiceError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, model.NewOrderResponse(order))
}

// DeleteOrder removes an order.
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.orderService.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err, "Order not found")
		return
	}
	c.Status(http.StatusNoContent)
}
