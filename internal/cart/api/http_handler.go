package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/avkrasnov/delivery-store/internal/auth"
	"github.com/avkrasnov/delivery-store/internal/cart/domain"
	"github.com/avkrasnov/delivery-store/internal/cart/repository"
	"github.com/avkrasnov/delivery-store/internal/cart/service"
	"github.com/avkrasnov/delivery-store/internal/platform/logger"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cs service.CartService) *CartHandler {
	return &CartHandler{cartService: cs}
}

func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Use(auth.RequireLogin())
	{
		cartRoutes.POST("", h.Add)
		cartRoutes.GET("", h.List)
		cartRoutes.DELETE("/:article", h.Remove)
	}
}

func (h *CartHandler) Add(c *gin.Context) {
	login, ok := auth.LoginFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req domain.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data"})
		return
	}

	if err := h.cartService.Add(c.Request.Context(), login, req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCartLine), errors.Is(err, repository.ErrUnknownArticle):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data"})
		default:
			logger.Error("Cart Add: service error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product added to cart"})
}

func (h *CartHandler) List(c *gin.Context) {
	login, ok := auth.LoginFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	lines, err := h.cartService.List(c.Request.Context(), login)
	if err != nil {
		logger.Error("Cart List: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cart"})
		return
	}
	c.JSON(http.StatusOK, lines)
}

func (h *CartHandler) Remove(c *gin.Context) {
	login, ok := auth.LoginFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	article, err := strconv.ParseInt(c.Param("article"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid article"})
		return
	}
	if err := h.cartService.Remove(c.Request.Context(), login, article); err != nil {
		logger.Error("Cart Remove: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart"})
}
