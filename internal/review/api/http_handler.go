package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/avkrasnov/delivery-store/internal/auth"
	"github.com/avkrasnov/delivery-store/internal/platform/logger"
	"github.com/avkrasnov/delivery-store/internal/review/domain"
	"github.com/avkrasnov/delivery-store/internal/review/repository"
	"github.com/avkrasnov/delivery-store/internal/review/service"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(rs service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: rs}
}

func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/products/:article/reviews", h.ListProductReviews)
	router.POST("/products/:article/reviews", auth.RequireLogin(), h.AddReview)
	router.GET("/profile/reviews", auth.RequireLogin(), h.ListUserReviews)
}

func (h *ReviewHandler) AddReview(c *gin.Context) {
	login, ok := auth.LoginFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	article, err := strconv.ParseInt(c.Param("article"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid article"})
		return
	}

	var req domain.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Review text and rating are required"})
		return
	}

	if err := h.reviewService.AddReview(c.Request.Context(), login, article, req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidReview):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Review text and rating are required"})
		case errors.Is(err, repository.ErrUnknownArticle):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown article"})
		default:
			logger.Error("AddReview: service error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add review"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review added successfully"})
}

func (h *ReviewHandler) ListProductReviews(c *gin.Context) {
	article, err := strconv.ParseInt(c.Param("article"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid article"})
		return
	}
	reviews, err := h.reviewService.ListByArticle(c.Request.Context(), article)
	if err != nil {
		logger.Error("ListProductReviews: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) ListUserReviews(c *gin.Context) {
	login, ok := auth.LoginFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	reviews, err := h.reviewService.ListByLogin(c.Request.Context(), login)
	if err != nil {
		logger.Error("ListUserReviews: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}
