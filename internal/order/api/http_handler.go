package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avkrasnov/delivery-store/internal/auth"
	"github.com/avkrasnov/delivery-store/internal/order/domain"
	"github.com/avkrasnov/delivery-store/internal/order/service"
	"github.com/avkrasnov/delivery-store/internal/platform/logger"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(os service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: os}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Use(auth.RequireLogin())
	{
		orderRoutes.GET("", h.ListOrders)
		orderRoutes.POST("", h.PlaceOrder)
	}
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	login, ok := auth.LoginFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req domain.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Orders should be a list"})
		return
	}
	if len(req.Orders) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Orders should be a list"})
		return
	}

	order, err := h.orderService.PlaceOrder(c.Request.Context(), login, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidLine):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order data: " + err.Error()})
		case errors.Is(err, domain.ErrInsufficientStock):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case errors.Is(err, service.ErrEmptyBatch):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Orders should be a list"})
		default:
			logger.Error("PlaceOrder: service error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Orders placed successfully",
		"order_id": order.ID,
	})
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	login, ok := auth.LoginFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), login)
	if err != nil {
		logger.Error("ListOrders: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}
